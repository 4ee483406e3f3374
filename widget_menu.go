// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type MenuWidget struct {
	Root *tview.Flex

	buttonsLeft  *tview.Flex
	buttonsRight *tview.Flex

	activeButton string
	buttons      map[string]*tview.Button

	buttonStyle     tcell.Style
	quitActiveStyle tcell.Style

	// external references
	ui *Ui
}

var buttonOrder = []string{PagePlayer, PageSignal, PageLog}

func (ui *Ui) createMenuWidget() (m *MenuWidget) {
	m = &MenuWidget{
		activeButton: buttonOrder[0],
		buttons:      make(map[string]*tview.Button),

		buttonStyle:     tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		quitActiveStyle: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorRed),

		ui: ui,
	}

	// page buttons on the left
	m.buttonsLeft = tview.NewFlex().
		SetDirection(tview.FlexColumn)
	m.createPageButtons()
	m.updatePageButtons()

	// help and quit button on the right
	quitButton := tview.NewButton("Q: quit").
		SetStyle(m.buttonStyle).
		SetActivatedStyle(m.quitActiveStyle).
		SetSelectedFunc(func() {
			ui.Quit()
		})

	helpButton := tview.NewButton("?: help").
		SetStyle(m.buttonStyle).
		SetActivatedStyle(m.buttonStyle).
		SetSelectedFunc(func() {
			ui.ShowHelp()
		})

	m.buttonsRight = tview.NewFlex().
		SetDirection(tview.FlexColumn)
	m.buttonsRight.AddItem(nil, 0, 1, false) // fill space to right-align the buttons
	m.buttonsRight.AddItem(helpButton, 9, 0, false)
	m.buttonsRight.AddItem(quitButton, 9, 0, false)

	m.Root = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(m.buttonsLeft, 0, 4, false).
		AddItem(m.buttonsRight, 0, 2, false)

	// clear background
	m.Root.Box = tview.NewBox()

	return
}

func (m *MenuWidget) createPageButtons() {
	for i, page := range buttonOrder {
		button := tview.NewButton(page)
		button.SetStyle(m.buttonStyle)
		// keep number-key page switches from leaving a button highlighted
		button.SetActivatedStyle(m.buttonStyle)

		buttonPage := page
		button.SetSelectedFunc(func() {
			m.ui.ShowPage(buttonPage)
		})

		m.buttons[page] = button
		m.buttonsLeft.AddItem(button, 12, 0, false)

		// add spacer
		if i < len(buttonOrder)-1 {
			m.buttonsLeft.AddItem(nil, 1, 0, false)
		}
	}
}

func (m *MenuWidget) updatePageButtons() {
	for page, text := range pageButtonLabels(m.activeButton) {
		m.buttons[page].SetLabel(text)
	}
}

// pageButtonLabels numbers the pages in menu order and bolds the active one.
func pageButtonLabels(active string) map[string]string {
	labels := make(map[string]string, len(buttonOrder))
	for i, page := range buttonOrder {
		if page == active {
			labels[page] = fmt.Sprintf("%d: [::b]%s[::-]", i+1, page)
		} else {
			labels[page] = fmt.Sprintf("%d: %s", i+1, page)
		}
	}
	return labels
}

func (m *MenuWidget) SetActivePage(name string) {
	if _, ok := m.buttons[name]; !ok {
		return // invalid button name
	}

	m.activeButton = name
	m.updatePageButtons()
}

func (m *MenuWidget) GetActivePage() string {
	return m.activeButton
}
