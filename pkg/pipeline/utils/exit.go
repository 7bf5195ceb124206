/*
 * Copyright (C) 2022 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package utils

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"
)

var (
	registeredChannels []chan struct{}
	chanMutex          sync.Mutex
)

// RegisterExitChannel adds a channel closed on SIGINT or SIGTERM.
// SetupElegantExit must have been called first.
func RegisterExitChannel(ch chan struct{}) {
	chanMutex.Lock()
	defer chanMutex.Unlock()
	registeredChannels = append(registeredChannels, ch)
}

// ExitChannel registers and returns a new exit channel
func ExitChannel() <-chan struct{} {
	ch := make(chan struct{})
	RegisterExitChannel(ch)
	return ch
}

// SetupElegantExit closes every registered channel once an exit signal is received
func SetupElegantExit() {
	log.Debugf("entering SetupElegantExit")
	chanMutex.Lock()
	registeredChannels = make([]chan struct{}, 0)
	chanMutex.Unlock()
	exitSigChan := make(chan os.Signal, 1)
	signal.Notify(exitSigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-exitSigChan
		log.Infof("received exit signal = %v", sig)
		chanMutex.Lock()
		defer chanMutex.Unlock()
		for _, ch := range registeredChannels {
			close(ch)
		}
		registeredChannels = nil
	}()
}
