// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SaveState saves a State to a file which name is set with tidx (time output index)
func SaveState(sta *State, dirout, fnkey, enctype string, tidx int, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode state
	err = enc.Encode(sta.T)
	if err != nil {
		return chk.Err("cannot encode State.T:\n%v", err)
	}
	err = enc.Encode(sta.U)
	if err != nil {
		return chk.Err("cannot encode State.U:\n%v", err)
	}
	err = enc.Encode(sta.P)
	if err != nil {
		return chk.Err("cannot encode State.P:\n%v", err)
	}

	// save file
	fn := out_nod_path(dirout, fnkey, enctype, tidx)
	return save_file(fn, &buf, verbose)
}

// ReadState reads a State from a file which name is set with tidx (time output index)
func ReadState(dirout, fnkey, enctype string, tidx int) (sta *State, err error) {

	// open file
	fn := out_nod_path(dirout, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open results file:\n%v", err)
	}
	defer fil.Close()

	// get decoder
	dec := GetDecoder(fil, enctype)

	// decode state
	sta = new(State)
	err = dec.Decode(&sta.T)
	if err != nil {
		return nil, chk.Err("cannot decode State.T:\n%v", err)
	}
	err = dec.Decode(&sta.U)
	if err != nil {
		return nil, chk.Err("cannot decode State.U:\n%v", err)
	}
	err = dec.Decode(&sta.P)
	if err != nil {
		return nil, chk.Err("cannot decode State.P:\n%v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_nod_path(dirout, fnkey, enctype string, tidx int) string {
	return path.Join(dirout, io.Sf("%s_nod_%010d.%s", fnkey, tidx, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer fil.Close()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
