package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/tuannh982/hashset/utils/collections"
	"gopkg.in/yaml.v3"

	log "github.com/sirupsen/logrus"
)

// readElements reads one element file. Blank lines are skipped in the
// lines format.
func readElements(path, format string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if format == formatLines {
		arr := make([]string, 0)
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				arr = append(arr, line)
			}
		}
		return arr, errors.Wrapf(scanner.Err(), "scan %s", path)
	}
	arr := make([]string, 0)
	if err := yaml.Unmarshal(data, &arr); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return arr, nil
}

func (o *options) loadSet(path string) (*collections.HashSet[string], error) {
	arr, err := readElements(path, o.format)
	if err != nil {
		return nil, err
	}
	logger := log.WithField("file", path)
	s, err := collections.New(o.capacity, collections.StringComparer(), collections.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := s.UnionWith(slices.Values(arr)); err != nil {
		return nil, err
	}
	logger.WithFields(log.Fields{
		"read":     len(arr),
		"distinct": s.Count(),
	}).Debug("loaded set")
	return s, nil
}

// writeElements prints values sorted, so output is stable across runs.
func writeElements(w io.Writer, format string, values []string) error {
	slices.Sort(values)
	if format == formatLines {
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
	return writeYAML(w, values)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode output")
	}
	return enc.Close()
}
