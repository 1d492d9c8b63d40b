package romloader

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/bodgit/sevenzip"
)

// extractAllFromZIP pulls every wanted ROM bank out of a ZIP archive.
func extractAllFromZIP(path string) (map[string][]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", path, err)
	}
	defer r.Close()

	found := make(map[string][]byte)
	for _, entry := range r.File {
		key, ok := wantedBankName(entry.Name)
		if !ok || entry.FileInfo().IsDir() {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in zip: %w", entry.Name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s from zip: %w", entry.Name, err)
		}
		found[key] = data
	}
	return found, nil
}

// extractAllFrom7z pulls every wanted ROM bank out of a 7z archive.
func extractAllFrom7z(path string) (map[string][]byte, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open 7z %s: %w", path, err)
	}
	defer r.Close()

	found := make(map[string][]byte)
	for _, entry := range r.File {
		key, ok := wantedBankName(entry.Name)
		if !ok || entry.FileInfo().IsDir() {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in 7z: %w", entry.Name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s from 7z: %w", entry.Name, err)
		}
		found[key] = data
	}
	return found, nil
}

// extractAllFromGzip handles both a bare single-file .gz (the whole
// decompressed stream is one ROM bank, named by the file name stored in
// the gzip header; the archive's own file name is not consulted) and a
// .tar.gz bundling all four banks.
func extractAllFromGzip(path string) (map[string][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream in %s: %w", path, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	found := make(map[string][]byte)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Not a tar stream: treat the whole decompressed payload as a
			// single bank named from the gzip header.
			return extractSingleGzipPayload(path, gz, header)
		}
		key, ok := wantedBankName(header.Name)
		if !ok || header.Typeflag == tar.TypeDir {
			continue
		}
		data, err := limitedRead(tr)
		if err != nil {
			return nil, fmt.Errorf("read %s from tar.gz: %w", header.Name, err)
		}
		found[key] = data
	}
	return found, nil
}

// extractSingleGzipPayload is reached when the gzip payload isn't a tar
// stream; tr.Next's error already consumed some of gz, so this re-reads
// from the start of a fresh gzip reader instead of trying to rewind tr.
func extractSingleGzipPayload(path string, _ *gzip.Reader, _ *tar.Header) (map[string][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream in %s: %w", path, err)
	}
	defer gz.Close()

	data, err := limitedRead(gz)
	if err != nil {
		return nil, fmt.Errorf("read gzip payload of %s: %w", path, err)
	}

	key, ok := wantedBankName(gz.Name)
	if !ok {
		return nil, fmt.Errorf("%w: gzip payload name %q", ErrBankNotFound, gz.Name)
	}
	return map[string][]byte{key: data}, nil
}
