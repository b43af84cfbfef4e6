package tessellate

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/voidshard/tessellate/internal/band"
)

// JSON returns the tessellation as json.
// The colour field is left out, Bands hold the same data.
func (t *Tessellation) JSON() ([]byte, error) {
	return json.Marshal(t)
}

// SaveJSON writes a json file to the given path.
func (t *Tessellation) SaveJSON(fpath string) error {
	data, err := t.JSON()
	if err != nil {
		return err
	}
	return writeFile(fpath, data)
}

// MarshalBands packs the bands into a compact binary form, see UnmarshalBands.
func (t *Tessellation) MarshalBands() ([]byte, error) {
	return band.Marshal(t.Bands, nil)
}

// SaveBands writes the binary band form to the given path.
func (t *Tessellation) SaveBands(fpath string) error {
	data, err := t.MarshalBands()
	if err != nil {
		return err
	}
	return writeFile(fpath, data)
}

// UnmarshalBands reads bands written by MarshalBands.
func UnmarshalBands(data []byte) ([]Band, error) {
	return band.Unmarshal(data, nil)
}

func writeFile(fpath string, data []byte) error {
	err := os.WriteFile(fpath, data, 0644)
	if err != nil {
		return errors.Wrapf(err, "writing %s", fpath)
	}
	return nil
}
