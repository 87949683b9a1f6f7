package render

import (
	"fmt"
)

// Clipboard receives copied article text.
type Clipboard interface {
	WriteText(text string) error
}

// FileSaver persists a downloaded article under name.
type FileSaver interface {
	Save(name string, content []byte) (string, error)
}

// Copy puts the raw article text on the clipboard.
func Copy(cb Clipboard, v View) error {
	if err := cb.WriteText(v.Raw); err != nil {
		return fmt.Errorf("copy %s: %w", v.Filename, err)
	}
	return nil
}

// Download saves the raw article text. name overrides the view's filename;
// when both are empty the topic-derived name is used.
func Download(saver FileSaver, v View, name, topic string) (string, error) {
	if name == "" {
		name = v.Filename
	}
	if name == "" {
		name = DerivedFilename(topic)
	}

	path, err := saver.Save(name, []byte(v.Raw))
	if err != nil {
		return "", fmt.Errorf("download %s: %w", name, err)
	}
	return path, nil
}
