package archive

import (
	"bytes"
	"chatsplit/internal/archive/interfaces"
	"chatsplit/internal/models"
	"chatsplit/internal/providers"
	"chatsplit/internal/structures"
	"context"
	"fmt"
	json "github.com/goccy/go-json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	filePrefix    = "messages_"
	fileExtension = ".json"
)

type FileManagerInterface interface {
	FileName(date string) string
	SavePartition(ctx context.Context, partition *models.Partition) ([]string, error)
	ReadPartition(dir string) (*models.Partition, error)
	Close()
}

// FileManager writes one JSON array per date into the output directory and
// can read such a directory back.
type FileManager struct {
	conf       *structures.Config
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewFileManager(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) FileManagerInterface {
	return &FileManager{
		conf:       conf,
		compressor: compressor,
		logger:     logger,
		metrics:    metrics,
	}
}

func (f *FileManager) FileName(date string) string {
	return filePrefix + date + fileExtension + f.compressor.Extension()
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// SavePartition creates the output directory and writes every date of the
// partition. It stops before the next file once ctx is done; files already
// written stay complete.
func (f *FileManager) SavePartition(ctx context.Context, partition *models.Partition) ([]string, error) {
	dir := f.conf.Output.Dir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	written := make([]string, 0, partition.Len())
	for _, group := range partition.Groups() {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		path := filepath.Join(dir, f.FileName(group.Date))
		size, err := f.saveDate(path, group.Nodes)
		if err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)

		f.metrics.IncFilesWritten(f.compressor.Name())
		f.metrics.AddBytesWritten(size)
		f.logger.Debugf(providers.TypeWrite, "Wrote %d message(s) to %s", len(group.Nodes), path)
	}
	return written, nil
}

func (f *FileManager) saveDate(fileName string, nodes []models.MessageNode) (int, error) {
	jsonData, err := f.encode(nodes)
	if err != nil {
		return 0, err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return 0, err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(f.conf.Output.FileMode))
	if err != nil {
		return 0, err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return 0, err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return 0, err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return 0, err
	}

	if err = os.Rename(tmpFile, fileName); err != nil {
		os.Remove(tmpFile)
		return 0, err
	}
	return len(data), nil
}

// encode renders nodes as a JSON array indented with the configured indent.
func (f *FileManager) encode(nodes []models.MessageNode) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, n := range nodes {
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.Write(n.Raw)
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", f.conf.Output.Indent); err != nil {
		return nil, fmt.Errorf("encode nodes: %w", err)
	}
	return out.Bytes(), nil
}

// ReadPartition loads every messages_<date>.json[.zst|.gz] file in dir, in
// calendar order. Node identifiers come from each node's "id" field.
func (f *FileManager) ReadPartition(dir string) (*models.Partition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read output directory: %w", err)
	}

	byDate := make(map[string][]dateFile)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		date, codec, ok := parseFileName(e.Name())
		if !ok {
			continue
		}
		byDate[date] = append(byDate[date], dateFile{date: date, codec: codec, path: filepath.Join(dir, e.Name())})
	}

	files := make([]dateFile, 0, len(byDate))
	for date, candidates := range byDate {
		df, err := f.pickFile(date, candidates)
		if err != nil {
			return nil, err
		}
		files = append(files, df)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].date < files[j].date })

	partition := models.NewPartition()
	for _, df := range files {
		nodes, err := f.readDate(df.path, df.codec)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", df.path, err)
		}
		for i, raw := range nodes {
			node := models.MessageNode{ID: fmt.Sprintf("%s#%d", df.date, i), Raw: raw}
			node.ID = node.NodeID()
			partition.Append(df.date, node)
		}
	}
	return partition, nil
}

type dateFile struct {
	date  string
	codec string
	path  string
}

// pickFile chooses the file to read for a date. Leftovers of an earlier run
// with another compression are ignored when a file in the configured codec
// exists.
func (f *FileManager) pickFile(date string, candidates []dateFile) (dateFile, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	for _, df := range candidates {
		if df.codec == f.compressor.Name() {
			f.logger.Warnf(providers.TypeLoad, "Date %s has %d files, reading %s", date, len(candidates), df.path)
			return df, nil
		}
	}
	return dateFile{}, fmt.Errorf("%w: %s has %d files and none is %s", models.ErrAmbiguousDate, date, len(candidates), f.compressor.Name())
}

func (f *FileManager) readDate(path, codec string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	compressor := f.compressor
	if compressor.Name() != codec {
		compressor, err = NewCompressor(codec)
		if err != nil {
			return nil, err
		}
		defer compressor.Close()
	}

	decompressed, err := compressor.Decompress(data)
	if err != nil {
		return nil, err
	}

	var nodes []json.RawMessage
	if err := json.Unmarshal(decompressed, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

// parseFileName splits "messages_2023-11-14.json.zst" into its date and codec.
func parseFileName(name string) (string, string, bool) {
	if !strings.HasPrefix(name, filePrefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(name, filePrefix)

	codec := CompressionNone
	switch {
	case strings.HasSuffix(rest, fileExtension+".zst"):
		codec = CompressionZstd
		rest = strings.TrimSuffix(rest, fileExtension+".zst")
	case strings.HasSuffix(rest, fileExtension+".gz"):
		codec = CompressionGzip
		rest = strings.TrimSuffix(rest, fileExtension+".gz")
	case strings.HasSuffix(rest, fileExtension):
		rest = strings.TrimSuffix(rest, fileExtension)
	default:
		return "", "", false
	}

	if _, err := time.Parse(models.DateKeyLayout, rest); err != nil {
		return "", "", false
	}
	return rest, codec, true
}
