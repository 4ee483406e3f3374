// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package subsonic

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
)

// authToken returns the Subsonic token auth pair: md5(password + salt) and
// the random salt it was made with.
func authToken(password string) (string, string) {
	salt := make([]byte, 8)
	if _, err := rand.Read(salt); err != nil {
		// crypto/rand only fails if the OS source is broken
		panic(err)
	}
	saltHex := hex.EncodeToString(salt)
	return tokenFor(password, saltHex), saltHex
}

func tokenFor(password, salt string) string {
	sum := md5.Sum([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}
