package i8080Invaders

import (
	"io/ioutil"
	"path/filepath"

	"github.com/is386/GoInvaders/i8080"
	"github.com/pkg/errors"
)

const romImageSize = 0x800

var romImages = []struct {
	name   string
	offset uint16
}{
	{"invaders.h", 0x0000},
	{"invaders.g", 0x0800},
	{"invaders.f", 0x1000},
	{"invaders.e", 0x1800},
}

// LoadInvadersROMs loads the four Space Invaders images from dir into the
// fixed arcade layout.
func LoadInvadersROMs(cpu *i8080.CPU, dir string) error {
	for _, img := range romImages {
		path := filepath.Join(dir, img.name)
		if err := LoadROMFile(cpu, path, img.offset); err != nil {
			return err
		}
	}
	return nil
}

// LoadROMFile loads a single ROM image at offset.
func LoadROMFile(cpu *i8080.CPU, path string, offset uint16) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading rom %s", path)
	}
	if int(offset)+len(data) > 0x2000 {
		return errors.Errorf("rom %s (%d bytes at %04X) overruns the 8K rom space", path, len(data), offset)
	}
	cpu.Load(data, offset)
	return nil
}
