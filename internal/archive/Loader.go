package archive

import (
	"chatsplit/internal/models"
	"chatsplit/internal/providers"
	"fmt"
	json "github.com/goccy/go-json"
	"io"
	"os"
)

type LoaderInterface interface {
	Load(path string) (models.Export, error)
	LoadNodes(path string, conversation int) (*models.Conversation, []models.MessageNode, error)
}

// Loader reads an export file into memory. Plain, zstd and gzip inputs are
// told apart by their first bytes, not by file extension.
type Loader struct {
	logger providers.Logger
}

func NewLoader(logger providers.Logger) LoaderInterface {
	return &Loader{logger: logger}
}

func (l *Loader) Load(path string) (models.Export, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	codec := DetectCompression(data)
	if codec != CompressionNone {
		compressor, err := NewCompressor(codec)
		if err != nil {
			return nil, err
		}
		defer compressor.Close()

		l.logger.Debugf(providers.TypeLoad, "Input %s is %s compressed (%d bytes)", path, codec, len(data))
		data, err = compressor.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompress input: %w", err)
		}
	}

	var export models.Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse input %s: %w", path, err)
	}

	l.logger.Debugf(providers.TypeLoad, "Loaded %d conversation(s) from %s", len(export), path)
	return export, nil
}

func (l *Loader) LoadNodes(path string, conversation int) (*models.Conversation, []models.MessageNode, error) {
	export, err := l.Load(path)
	if err != nil {
		return nil, nil, err
	}
	conv, err := export.Conversation(conversation)
	if err != nil {
		return nil, nil, err
	}
	nodes, err := conv.Nodes()
	if err != nil {
		return nil, nil, fmt.Errorf("conversation %d: %w", conversation, err)
	}

	l.logger.Infof(providers.TypeLoad, "Conversation %d %q has %d mapping node(s)", conversation, conv.Title, len(nodes))
	return conv, nodes, nil
}
