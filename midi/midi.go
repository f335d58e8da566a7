package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// WriteMidiFile persists s at path without ever leaving a partial output:
// the bytes go to a uniquely named temp file in the target directory and
// are renamed into place only after a complete write. Missing parent
// directories are created.
func WriteMidiFile(s *smf.SMF, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("could not create output dir %v: %v", dir, err)
	}
	tmp := filepath.Join(dir, uuid.New().String()+".tmp")
	if err := s.WriteFile(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %v: %v", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not move output into place: %v", err)
	}
	return nil
}

// TicksPerBeat returns the file's resolution in ticks per quarter note.
func TicksPerBeat(s *smf.SMF) (int, error) {
	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0, fmt.Errorf("unsupported time format %v (only metric ticks)", s.TimeFormat)
	}
	return int(mt), nil
}
