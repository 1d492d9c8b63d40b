package cpmtest

import "testing"

// printCharProgram builds a tiny CP/M-style program: for each byte c printed via
// BDOS function 2, `mvi e, c / mvi c, 2 / call 5`, terminated by `jmp 0`.
func printCharProgram(chars ...byte) []byte {
	var prog []byte
	for _, c := range chars {
		prog = append(prog, 0x1E, c) // mvi e, c
		prog = append(prog, 0x0E, 2) // mvi c, 2
		prog = append(prog, 0xCD, 0x05, 0x00) // call 5
	}
	prog = append(prog, 0xC3, 0x00, 0x00) // jmp 0
	return prog
}

func TestBDOSPrintCharacter(t *testing.T) {
	h := New(10_000)
	if err := h.LoadProgram(printCharProgram('O', 'K')); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}

	got := h.Run()
	if got != "OK\n" {
		t.Fatalf("output = %q, want %q", got, "OK\n")
	}
}

func TestBDOSPrintString(t *testing.T) {
	h := New(10_000)

	// call 9 with de pointing at a "$"-terminated string placed right
	// after the jmp-to-0 that ends the program.
	var prog []byte
	prog = append(prog, 0x11, 0x0B, 0x01) // lxi d, 0x010B
	prog = append(prog, 0x0E, 9)          // mvi c, 9
	prog = append(prog, 0xCD, 0x05, 0x00) // call 5
	prog = append(prog, 0xC3, 0x00, 0x00) // jmp 0
	prog = append(prog, []byte("HELLO$")...)

	if err := h.LoadProgram(prog); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}

	got := h.Run()
	if got != "HELLO\n" {
		t.Fatalf("output = %q, want %q", got, "HELLO\n")
	}
}

func TestCarriageReturnsAreDropped(t *testing.T) {
	h := New(10_000)
	if err := h.LoadProgram(printCharProgram('A', '\r', 'B')); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}

	got := h.Run()
	if got != "AB\n" {
		t.Fatalf("output = %q, want %q (carriage return dropped)", got, "AB\n")
	}
}

func TestUnknownBDOSFunctionIsLogged(t *testing.T) {
	var logged []string
	h := New(10_000)
	h.SetLogger(loggerFunc(func(format string, args ...any) {
		logged = append(logged, format)
	}))

	var prog []byte
	prog = append(prog, 0x0E, 99)          // mvi c, 99 (not 2 or 9)
	prog = append(prog, 0xCD, 0x05, 0x00) // call 5
	prog = append(prog, 0xC3, 0x00, 0x00) // jmp 0

	if err := h.LoadProgram(prog); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	h.Run()

	if len(logged) == 0 {
		t.Fatal("expected unknown BDOS function to be logged")
	}
}

type loggerFunc func(format string, args ...any)

func (f loggerFunc) Printf(format string, args ...any) { f(format, args...) }
