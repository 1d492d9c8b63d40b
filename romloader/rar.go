package romloader

import (
	"fmt"
	"io"

	"github.com/nwaples/rardecode/v2"
)

// extractAllFromRAR pulls every wanted ROM bank out of a RAR archive.
func extractAllFromRAR(path string) (map[string][]byte, error) {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open rar %s: %w", path, err)
	}
	defer r.Close()

	found := make(map[string][]byte)
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rar entry: %w", err)
		}

		key, ok := wantedBankName(header.Name)
		if !ok || header.IsDir {
			continue
		}

		data, err := limitedRead(r)
		if err != nil {
			return nil, fmt.Errorf("read %s from rar: %w", header.Name, err)
		}
		found[key] = data
	}
	return found, nil
}
