// Package web embebe el frontend estático en el binario.
package web

import "embed"

// StaticFS contiene la página, los scripts, el manifest PWA y el service worker.
//
//go:embed all:static
var StaticFS embed.FS
