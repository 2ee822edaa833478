package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dineforge/restalytics/internal/models"
)

// Destination receives serialized analysis results and alerts. The topic
// names the analysis or alert stream the message belongs to.
type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))
	if _, err := os.Stdout.Write([]byte(output)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

// JSONOutput appends one JSON document per message to <basePath>/<topic>.json.
type JSONOutput struct {
	basePath string
	files    map[string]*os.File
}

func NewJSONOutput(basePath string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		if err := os.MkdirAll(j.basePath, os.ModePerm); err != nil {
			return err
		}
		var err error
		file, err = os.Create(filepath.Join(j.basePath, topic+".json"))
		if err != nil {
			return err
		}
		j.files[topic] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// ForConfig selects the destination configured for result delivery:
// Kafka when enabled, a JSON file directory when an output path is set,
// stdout otherwise.
func ForConfig(cfg *models.Config) (Destination, error) {
	if cfg.KafkaEnabled {
		producer, err := NewSaramaProducer(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
		}
		return producer, nil
	}
	if cfg.OutputPath != "" && cfg.OutputFormat == "json" {
		return NewJSONOutput(cfg.OutputPath), nil
	}
	return &ConsoleOutput{}, nil
}
