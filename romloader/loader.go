// Package romloader locates and loads the four Invaders ROM banks from
// either a plain directory or a compressed archive (ZIP, 7z, gzip/tar.gz,
// RAR), detecting the archive format from its magic bytes.
package romloader

import (
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BankNames are the four ROM files that make up an Invaders ROM set, in
// load order (h at 0x0000, g at 0x0800, f at 0x1000, e at 0x1800).
var BankNames = [4]string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}

// BankSize is the required size of each ROM bank; any size mismatch aborts
// the load.
const BankSize = 0x0800

// Magic bytes for archive format detection.
var (
	magicZIP    = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4B, 0x05, 0x06} // empty zip
	magic7z     = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip   = []byte{0x1F, 0x8B}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
)

// ErrBankNotFound is returned when an archive doesn't contain one of the
// four required ROM bank files.
var ErrBankNotFound = errors.New("rom bank not found in archive")

// ErrUnsupportedFormat is returned for unrecognized archive formats.
var ErrUnsupportedFormat = errors.New("unsupported archive format")

// maxBankSize guards against decompression bombs masquerading as ROM
// banks; real banks are always exactly BankSize.
const maxBankSize = 1 * 1024 * 1024

type formatType int

const (
	formatUnknown formatType = iota
	formatZIP
	format7z
	formatGzip
	formatRAR
)

// LoadROMSet loads the four named ROM banks from path, which may be either
// a directory containing invaders.h/g/f/e directly, or an archive bundling
// all four. The returned array is ordered h, g, f, e.
func LoadROMSet(path string) ([4][]byte, error) {
	var banks [4][]byte

	info, err := os.Stat(path)
	if err != nil {
		return banks, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.IsDir() {
		return loadFromDirectory(path)
	}

	format, err := detectFormat(path)
	if err != nil {
		return banks, err
	}

	var found map[string][]byte
	switch format {
	case formatZIP:
		found, err = extractAllFromZIP(path)
	case format7z:
		found, err = extractAllFrom7z(path)
	case formatGzip:
		found, err = extractAllFromGzip(path)
	case formatRAR:
		found, err = extractAllFromRAR(path)
	default:
		return banks, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return banks, err
	}

	return selectBanks(found)
}

func loadFromDirectory(dir string) ([4][]byte, error) {
	var banks [4][]byte
	for i, name := range BankNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return banks, fmt.Errorf("reading %s: %w", name, err)
		}
		if len(data) != BankSize {
			return banks, fmt.Errorf("%s: got %d bytes, want %d", name, len(data), BankSize)
		}
		banks[i] = data
	}
	return banks, nil
}

// selectBanks picks the four required entries (matched case-insensitively
// by base name) out of everything an archive extractor found, validating
// each bank's size.
func selectBanks(found map[string][]byte) ([4][]byte, error) {
	var banks [4][]byte
	for i, name := range BankNames {
		data, ok := found[name]
		if !ok {
			return banks, fmt.Errorf("%w: %s", ErrBankNotFound, name)
		}
		if len(data) != BankSize {
			return banks, fmt.Errorf("%s: got %d bytes, want %d", name, len(data), BankSize)
		}
		banks[i] = data
	}
	return banks, nil
}

// wantedBankName reports whether name (an archive entry path) matches one
// of the four ROM bank files, ignoring directory components and case, and
// returns its canonical lowercase key.
func wantedBankName(name string) (key string, ok bool) {
	base := strings.ToLower(filepath.Base(name))
	for _, n := range BankNames {
		if base == n {
			return base, true
		}
	}
	return "", false
}

func detectFormat(path string) (formatType, error) {
	f, err := os.Open(path)
	if err != nil {
		return formatUnknown, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return formatUnknown, fmt.Errorf("read header of %s: %w", path, err)
	}
	header = header[:n]

	if bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEnd) {
		return formatZIP, nil
	}
	if bytes.HasPrefix(header, magicRAR) {
		return formatRAR, nil
	}
	if bytes.HasPrefix(header, magic7z) {
		return format7z, nil
	}
	if bytes.HasPrefix(header, magicGzip) {
		return formatGzip, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return formatZIP, nil
	case ".7z":
		return format7z, nil
	case ".gz", ".tgz":
		return formatGzip, nil
	case ".rar":
		return formatRAR, nil
	}

	return formatUnknown, nil
}

// Checksums computes a CRC32 fingerprint per bank, in the same h/g/f/e
// order as BankNames, for a frontend to log at startup.
func Checksums(banks [4][]byte) [4]uint32 {
	var sums [4]uint32
	for i, data := range banks {
		sums[i] = crc32.ChecksumIEEE(data)
	}
	return sums
}

// limitedRead reads from r up to maxBankSize bytes, erroring if exceeded.
func limitedRead(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, maxBankSize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(data) > maxBankSize {
		return nil, fmt.Errorf("entry exceeds %d byte limit", maxBankSize)
	}
	return data, nil
}
