package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadNetworkResults scans root for per-channel result directories. Each
// immediate subdirectory is a channel; each ".csv" file inside it is parsed
// as one trial matrix and tagged with its area label. Directories and files
// are visited in lexicographic order so results are deterministic.
//
// channels optionally restricts loading to the named channels; nil means
// all. Channels yielding no parsed files are omitted from the result. A
// parse failure in any file aborts the whole load.
func LoadNetworkResults(root string, channels []string) (*ChannelResultSet, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read results directory: %w", err)
	}

	var wanted map[string]bool
	if channels != nil {
		wanted = make(map[string]bool, len(channels))
		for _, name := range channels {
			wanted[name] = true
		}
	}

	results := NewChannelResultSet()
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		chnName := entry.Name()
		if wanted != nil && !wanted[chnName] {
			continue
		}

		chnRes, err := loadChannelDir(filepath.Join(root, chnName))
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", chnName, err)
		}
		if len(chnRes) == 0 {
			continue
		}
		results.Channels[chnName] = chnRes
		results.Names = append(results.Names, chnName)
	}
	return results, nil
}

func loadChannelDir(dir string) ([]ChannelResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read channel directory: %w", err)
	}

	fileNames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		fileNames = append(fileNames, entry.Name())
	}
	sort.Strings(fileNames)

	chnRes := make([]ChannelResult, 0, len(fileNames))
	for _, fileName := range fileNames {
		matrix, err := ParseTrialMatrix(filepath.Join(dir, fileName))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		chnRes = append(chnRes, ChannelResult{Matrix: matrix, Area: AreaName(fileName)})
	}
	return chnRes, nil
}
