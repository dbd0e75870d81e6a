// Package harness writes the Verilog module and its simulation-driver
// artifacts to disk: the .v source, a fixed Verilator C++ harness, a .mk
// build-rule fragment, and a top-level Makefile.
package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jbrzusto/vgen/config"
)

// IOError reports a directory-creation or file-write failure, wrapping the
// OS-layer error verbatim.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "harness: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func writeFile(dir, name, contents string) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// WriteModule creates dir if needed and writes <mod>.v containing source.
func WriteModule(dir, mod, source string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return writeFile(dir, mod+".v", source)
}

// WriteTop creates dir if needed and writes all four simulation-driver
// artifacts for mod: the .v source, a fixed .cpp harness, a .mk build
// fragment invoking verilator (parameterized by s.BlarneyRoot and
// s.VerilatorFlags), and a one-line top-level Makefile.
func WriteTop(dir, mod, source string, s config.Settings) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	if err := writeFile(dir, mod+".v", source); err != nil {
		return err
	}
	if err := writeFile(dir, mod+".cpp", cppHarness(mod)); err != nil {
		return err
	}
	if err := writeFile(dir, mod+".mk", mkFragment(mod, s)); err != nil {
		return err
	}
	return writeFile(dir, "Makefile", "include *.mk\n")
}

func cppHarness(mod string) string {
	return fmt.Sprintf(`#include "verilated.h"
#include "V%s.h"

vluint64_t main_time = 0;

double sc_time_stamp() {
	return main_time;
}

int main(int argc, char **argv) {
	Verilated::commandArgs(argc, argv);
	V%s *top = new V%s;
	while (!Verilated::gotFinish()) {
		top->clock = 0;
		top->eval();
		top->clock = 1;
		top->eval();
		main_time++;
	}
	top->final();
	delete top;
	return 0;
}
`, mod, mod, mod)
}

func mkFragment(mod string, s config.Settings) string {
	return fmt.Sprintf(`all: %s

%s: *.v *.cpp
	verilator -cc %s.v -exe %s.cpp -o %s -Wno-UNSIGNED -y %s/Verilog %s
	make -C obj_dir -j -f V%s.mk %s
	cp obj_dir/%s .
	rm -rf obj_dir

clean-%s:
	rm -f %s
`, mod, mod, mod, mod, mod, s.BlarneyRoot, s.VerilatorFlags, mod, mod, mod, mod, mod)
}
