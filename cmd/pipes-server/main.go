// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015-2016 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/dcbrotsky/pipes.go/pipes"
	"github.com/dcbrotsky/pipes.go/storage"
)

const (
	cookieName  = "pipesID"
	cookiePath  = "/"
	defaultSize = 5
)

func main() {
	ctx := context.Background()
	cacheId, databaseId, err := storage.Connect(ctx)
	if err != nil {
		log.Fatalf("Couldn't connect to storage: %v", err)
	}
	log.Printf("Connected to cache %q and database %q.", cacheId, databaseId)
	defer storage.Close(ctx)

	http.HandleFunc("/", rootHandler)

	// the raw, stateless pipes service layer: no cookie, no
	// session, just board in, board out.
	http.HandleFunc("/service/generate", func(w http.ResponseWriter, r *http.Request) {
		if _, err := pipes.GenerateHandler(w, r); err != nil {
			log.Printf("/service/generate: %v", err)
		}
	})
	http.HandleFunc("/service/rotate", func(w http.ResponseWriter, r *http.Request) {
		if _, err := pipes.RotateHandler(w, r); err != nil {
			log.Printf("/service/rotate: %v", err)
		}
	})
	http.HandleFunc("/service/solved", func(w http.ResponseWriter, r *http.Request) {
		if _, err := pipes.SolvedHandler(w, r); err != nil {
			log.Printf("/service/solved: %v", err)
		}
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "localhost:8080"
	} else {
		port = ":" + port
	}

	log.Printf("Listening on %s...", port)
	srv := &http.Server{Addr: port, ReadTimeout: 30 * time.Second, WriteTimeout: 30 * time.Second}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("Listener failure: ", err)
	}
}
