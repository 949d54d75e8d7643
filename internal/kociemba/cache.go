package kociemba

import (
	"bufio"
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/gtank/blake2/blake2b"
)

// cacheMagic tags the on-disk format so an incompatible file is rejected
// outright instead of partially loaded.
const cacheMagic = "kociemba-tables-v1"

// cacheHeader is written ahead of the gob-encoded table payload. The
// persistence contract (see the external interfaces design) is: identify
// a cached table set by name, length and checksum, and rebuild from
// scratch the moment any of the three fails to match.
type cacheHeader struct {
	Magic    string
	Name     string
	Length   int64
	Checksum []byte
}

type cachePayload struct {
	Move  moveTables
	Prune pruneTables
}

// saveTables writes the move and pruning tables to path, keyed by name.
func saveTables(path, name string, mt *moveTables, pt *pruneTables) error {
	var body bytes.Buffer
	enc := gob.NewEncoder(&body)
	if err := enc.Encode(cachePayload{Move: *mt, Prune: *pt}); err != nil {
		return fmt.Errorf("kociemba: encode table cache: %w", err)
	}

	sum, err := checksumOf(body.Bytes())
	if err != nil {
		return fmt.Errorf("kociemba: checksum table cache: %w", err)
	}

	header := cacheHeader{
		Magic:    cacheMagic,
		Name:     name,
		Length:   int64(body.Len()),
		Checksum: sum,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("kociemba: create table cache %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := gob.NewEncoder(w).Encode(header); err != nil {
		return fmt.Errorf("kociemba: write table cache header: %w", err)
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return fmt.Errorf("kociemba: write table cache body: %w", err)
	}
	return w.Flush()
}

// loadTables reads a table cache written by saveTables, verifying name,
// length and checksum before trusting the payload. Any mismatch is
// reported as an error so the caller falls back to rebuilding the tables
// from scratch rather than risking a partially valid cache.
func loadTables(path, name string) (*moveTables, *pruneTables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var header cacheHeader
	if err := gob.NewDecoder(r).Decode(&header); err != nil {
		return nil, nil, fmt.Errorf("kociemba: decode table cache header: %w", err)
	}
	if header.Magic != cacheMagic {
		return nil, nil, fmt.Errorf("kociemba: table cache has wrong magic %q", header.Magic)
	}
	if header.Name != name {
		return nil, nil, fmt.Errorf("kociemba: table cache is for %q, want %q", header.Name, name)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("kociemba: read table cache body: %w", err)
	}
	if int64(len(body)) != header.Length {
		return nil, nil, fmt.Errorf("kociemba: table cache length %d does not match header %d", len(body), header.Length)
	}

	sum, err := checksumOf(body)
	if err != nil {
		return nil, nil, fmt.Errorf("kociemba: checksum table cache: %w", err)
	}
	if !bytes.Equal(sum, header.Checksum) {
		return nil, nil, fmt.Errorf("kociemba: table cache checksum mismatch")
	}

	var payload cachePayload
	if err := gob.NewDecoder(bytes.NewReader(body)).Decode(&payload); err != nil {
		return nil, nil, fmt.Errorf("kociemba: decode table cache body: %w", err)
	}
	mt := payload.Move
	pt := payload.Prune
	return &mt, &pt, nil
}

// checksumOf hashes data with BLAKE2b, 32 bytes of output.
func checksumOf(data []byte) ([]byte, error) {
	d, err := blake2b.NewDigest(nil, nil, []byte("kociemba-cache"), 32)
	if err != nil {
		return nil, err
	}
	if _, err := d.Write(data); err != nil {
		return nil, err
	}
	return d.Sum(nil), nil
}
