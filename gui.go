// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/neuralllamas/focusflow/logger"
	"github.com/neuralllamas/focusflow/mpvplayer"
	"github.com/rivo/tview"
)

// struct contains all the updatable elements of the Ui
type Ui struct {
	app   *tview.Application
	pages *tview.Pages

	// top bar
	startStopStatus *tview.TextView
	playerStatus    *tview.TextView

	// bottom bar
	menuWidget *MenuWidget

	// player page
	queuePage *QueuePage

	// signal page
	signalPage *SignalPage

	// log page
	logPage *LogPage

	// modals
	messageBox *tview.Modal
	helpModal  tview.Primitive
	helpWidget *HelpWidget

	eventLoop *eventLoop
	mpvEvents chan mpvplayer.UiEvent

	session *session
	player  *mpvplayer.Player
	logger  *logger.Logger
}

const (
	// page identifiers (use these instead of hardcoding page names for showing/hiding)
	PagePlayer = "player"
	PageSignal = "signal"
	PageLog    = "log"

	PageMessageBox = "messageBox"
	PageHelpBox    = "helpBox"
)

func InitGui(sess *session) (ui *Ui) {
	ui = &Ui{
		eventLoop: nil, // initialized by initEventLoops()
		mpvEvents: make(chan mpvplayer.UiEvent, 5),

		session: sess,
		player:  sess.player,
		logger:  sess.logger,
	}

	ui.initEventLoops()

	ui.app = tview.NewApplication()
	ui.pages = tview.NewPages()

	// status text at the top
	statusLeft := fmt.Sprintf("[::b]%s[::-] %s", Name, Version)
	ui.startStopStatus = tview.NewTextView().SetText(statusLeft).
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true).
		SetScrollable(false)

	statusRight := formatPlayerStatus(0, 0, 0)
	ui.playerStatus = tview.NewTextView().SetText(statusRight).
		SetTextAlign(tview.AlignRight).
		SetDynamicColors(true).
		SetScrollable(false)

	ui.menuWidget = ui.createMenuWidget()
	ui.helpWidget = ui.createHelpWidget()

	// message box for small notes
	ui.messageBox = tview.NewModal().
		SetText("").
		SetBackgroundColor(tcell.ColorBlack)
	ui.messageBox.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		ui.pages.HidePage(PageMessageBox)
		ui.ShowPage(ui.menuWidget.GetActivePage())
		return nil
	})

	// help box modal
	ui.helpModal = makeModal(ui.helpWidget.Root, 60, 16)
	ui.helpWidget.Root.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if ui.helpWidget.visible && (event.Key() == tcell.KeyEscape) {
			ui.CloseHelp()
		}
		return event
	})

	// top bar: status text
	topBarFlex := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(ui.startStopStatus, 0, 1, false).
		AddItem(ui.playerStatus, 20, 0, false)

	ui.queuePage = ui.createQueuePage()
	ui.signalPage = ui.createSignalPage()
	ui.logPage = ui.createLogPage()

	ui.pages.AddPage(PagePlayer, ui.queuePage.Root, true, true).
		AddPage(PageSignal, ui.signalPage.Root, true, false).
		AddPage(PageLog, ui.logPage.Root, true, false).
		AddPage(PageMessageBox, ui.messageBox, true, false).
		AddPage(PageHelpBox, ui.helpModal, true, false)

	rootFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(topBarFlex, 1, 0, false).
		AddItem(ui.pages, 0, 1, true).
		AddItem(ui.menuWidget.Root, 1, 0, false)

	// add main input handler
	rootFlex.SetInputCapture(ui.handlePageInput)

	ui.app.SetRoot(rootFlex, true).
		SetFocus(rootFlex).
		EnableMouse(true)

	ui.queuePage.UpdateQueue()

	return ui
}

// Run blocks until the user quits. Cancelling ctx stops the event loops and
// the signal connection.
func (ui *Ui) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if ui.player != nil {
		// receive events from mpv wrapper
		ui.player.RegisterEventConsumer(ui)

		// run mpv event handler
		go ui.player.EventLoop()
	}

	// run gui/background event handler
	ui.runEventLoops(ctx)

	ui.session.startSignal(ctx, ui.signalPage)

	// gui main loop (blocking)
	return ui.app.Run()
}

func (ui *Ui) ShowHelp() {
	activePage := ui.menuWidget.GetActivePage()
	ui.helpWidget.RenderHelp(activePage)

	ui.pages.ShowPage(PageHelpBox)
	ui.pages.SendToFront(PageHelpBox)
	ui.app.SetFocus(ui.helpModal)
	ui.helpWidget.visible = true
}

func (ui *Ui) CloseHelp() {
	ui.helpWidget.visible = false
	ui.pages.HidePage(PageHelpBox)
}

func (ui *Ui) showMessageBox(text string) {
	ui.pages.ShowPage(PageMessageBox)
	ui.messageBox.SetText(text)
	ui.app.SetFocus(ui.messageBox)
}
