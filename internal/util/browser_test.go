package util

import (
	"net"
	"testing"
)

func TestBrowserCommands(t *testing.T) {
	url := "http://localhost:20262"
	for _, goos := range []string{"windows", "darwin", "linux", "freebsd"} {
		cmds := browserCommands(goos, url)
		if len(cmds) == 0 {
			t.Fatalf("%s: no commands", goos)
		}
		for _, c := range cmds {
			if c[len(c)-1] != url {
				t.Fatalf("%s: url not passed as last arg: %v", goos, c)
			}
		}
	}
	if got := browserCommands("darwin", url)[0][0]; got != "open" {
		t.Fatalf("darwin command=%q, want open", got)
	}
}

func TestFindAvailablePort_SkipsBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	busy := ln.Addr().(*net.TCPAddr).Port

	port, err := FindAvailablePort(busy)
	if err != nil {
		t.Fatalf("find port: %v", err)
	}
	if port == busy {
		t.Fatalf("returned busy port %d", busy)
	}
	if port < busy || port >= busy+20 {
		t.Fatalf("port %d out of search range", port)
	}
}
