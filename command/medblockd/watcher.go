// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"reflect"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// checks the configuration file when it changes and reports whether
// a restart is needed to apply it
//
// the directory is watched since editors often replace the file
type configWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	current  *Configuration
	reload   func(string) (*Configuration, error)
}

func newConfigWatcher(configurationFile string, current *Configuration) (*configWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(configurationFile))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(filePath)); nil != err {
		watcher.Close()
		return nil, err
	}

	return &configWatcher{
		log:      logger.New("config-watcher"),
		watcher:  watcher,
		filePath: filePath,
		current:  current,
		reload:   getConfiguration,
	}, nil
}

// Run - background process loop
func (w *configWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	defer w.watcher.Close()

	log.Infof("watching: %q", w.filePath)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue loop
			}
			log.Debugf("file event: %v", event)
			if watcherEventFileChange(event) {
				w.apply()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	log.Info("shutdown")
}

// the logger fixes levels when each channel is created, so nothing
// is applied at runtime; an edited file is validated and a restart is
// requested when it differs from the running configuration
func (w *configWatcher) apply() bool {
	c, err := w.reload(w.filePath)
	if nil != err {
		w.log.Errorf("reload: %q  error: %s", w.filePath, err)
		return false
	}
	if reflect.DeepEqual(w.current, c) {
		w.log.Debug("configuration unchanged")
		return false
	}
	w.log.Warnf("configuration: %q changed, restart to apply", w.filePath)
	return true
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
