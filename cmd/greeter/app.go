package main

import (
	"fmt"
	"io"

	"github.com/sonirico/libemit"
)

var (
	eventGreet    = libemit.NewEvent[string]("greet")
	eventShutdown = libemit.NewEvent[libemit.Void]("shutdown")
)

// greeter subscribes to the shared bus and writes one line per event it handles.
type greeter struct {
	out io.Writer
}

func newGreeter(bus *libemit.Bus, out io.Writer) *greeter {
	g := &greeter{out: out}

	libemit.OnFunc(bus, eventGreet, g.greet)
	libemit.OnceFunc(bus, eventGreet, g.welcome)
	libemit.OnceFunc(bus, eventShutdown, g.bye)

	return g
}

func (g *greeter) greet(name string) {
	fmt.Fprintf(g.out, "hi %s\n", name)
}

func (g *greeter) welcome(string) {
	fmt.Fprintln(g.out, "welcome, first guest")
}

func (g *greeter) bye(libemit.Void) {
	fmt.Fprintln(g.out, "bye")
}

// run publishes one greeting per name and then the shutdown signal.
func run(bus *libemit.Bus, names []string) {
	for _, name := range names {
		libemit.Emit(bus, eventGreet, name)
	}
	libemit.Signal(bus, eventShutdown)
}
