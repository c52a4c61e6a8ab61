package radial

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type jsonCategory struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Level    string          `json:"level"`
	Weight   *float64        `json:"weight,omitempty"`
	Parent   string          `json:"parent,omitempty"`
	Disabled bool            `json:"disabled,omitempty"`
	Color    string          `json:"color,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

type jsonDataset struct {
	Categories []jsonCategory `json:"categories"`
}

// LoadDataset parses a flat category list:
//
//	{"categories": [{"id": "joy", "label": "Joy", "level": "primary"}, ...]}
//
// Array order is insertion order. A missing weight defaults to 1. The
// result is not validated; NewLayout reports integrity errors.
func LoadDataset(jsonData []byte) (Dataset, error) {
	var doc jsonDataset
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	ds := Dataset{Categories: make([]Category, 0, len(doc.Categories))}
	for i, jc := range doc.Categories {
		lvl, err := ParseLevel(jc.Level)
		if err != nil {
			return Dataset{}, fmt.Errorf("parse dataset: category %d (%q): %w", i, jc.ID, err)
		}
		c := Category{
			ID:       jc.ID,
			Label:    jc.Label,
			Level:    lvl,
			Weight:   1,
			ParentID: jc.Parent,
			Disabled: jc.Disabled,
			Color:    jc.Color,
		}
		if jc.Weight != nil {
			c.Weight = *jc.Weight
		}
		if len(jc.Payload) > 0 {
			c.Payload = jc.Payload
		}
		ds.Categories = append(ds.Categories, c)
	}
	return ds, nil
}

// EmotionColor is one colour class of an emotion document.
type EmotionColor struct {
	Class string `json:"classe"`
	Hex   string `json:"hex"`
}

// EmotionColors are the colours of an emotion per ring position.
type EmotionColors struct {
	Center EmotionColor `json:"centro"`
	Middle EmotionColor `json:"meio"`
	Outer  EmotionColor `json:"externa"`
}

// Emotion is the Payload of categories loaded by LoadEmotions.
type Emotion struct {
	Level            string         `json:"nivel"`
	OriginalSize     float64        `json:"tamanho_original,omitempty"`
	Behavior         string         `json:"comportamento"`
	Colors           *EmotionColors `json:"cores,omitempty"`
	PrimaryEmotion   string         `json:"emocao_primaria,omitempty"`
	SecondaryEmotion string         `json:"emocao_secundaria,omitempty"`
}

// EmotionsMetadata is the header of an emotion document.
type EmotionsMetadata struct {
	Version     string `json:"versao"`
	Author      string `json:"autor"`
	Total       int    `json:"total_emocoes"`
	Primaries   int    `json:"primarias"`
	Secondaries int    `json:"secundarias"`
	Tertiaries  int    `json:"terciarias"`
}

// LoadEmotions parses an emotion document:
//
//	{"metadata": {...}, "emocoes": {"Alegria": {"nivel": "primaria", ...}, ...}}
//
// Each key becomes a category id and label; the object's key order is the
// insertion order. Secondaries hang off emocao_primaria and tertiaries off
// emocao_secundaria. A positive tamanho_original becomes the weight,
// otherwise the weight is 1. The ring colour matching the level (centro,
// meio, externa) becomes Category.Color and the full entry the Payload.
func LoadEmotions(jsonData []byte) (Dataset, EmotionsMetadata, error) {
	var meta EmotionsMetadata
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	if err := expectDelim(dec, '{'); err != nil {
		return Dataset{}, meta, fmt.Errorf("parse emotions: %w", err)
	}
	var ds Dataset
	found := false
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return Dataset{}, meta, fmt.Errorf("parse emotions: %w", err)
		}
		switch key {
		case "metadata":
			if err := dec.Decode(&meta); err != nil {
				return Dataset{}, meta, fmt.Errorf("parse emotions: metadata: %w", err)
			}
		case "emocoes":
			found = true
			if ds, err = decodeEmotions(dec); err != nil {
				return Dataset{}, meta, fmt.Errorf("parse emotions: %w", err)
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return Dataset{}, meta, fmt.Errorf("parse emotions: %s: %w", key, err)
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return Dataset{}, meta, fmt.Errorf("parse emotions: %w", err)
	}
	if !found {
		return Dataset{}, meta, errors.New("parse emotions: missing \"emocoes\"")
	}
	if meta.Total > 0 && meta.Total != ds.Len() {
		debugf("emotions: metadata declares %d emotions, document has %d", meta.Total, ds.Len())
	}
	return ds, meta, nil
}

func decodeEmotions(dec *json.Decoder) (Dataset, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return Dataset{}, fmt.Errorf("emocoes: %w", err)
	}
	var ds Dataset
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return Dataset{}, fmt.Errorf("emocoes: %w", err)
		}
		var e Emotion
		if err := dec.Decode(&e); err != nil {
			return Dataset{}, fmt.Errorf("emocoes: %q: %w", name, err)
		}
		c, err := emotionCategory(name, e)
		if err != nil {
			return Dataset{}, fmt.Errorf("emocoes: %w", err)
		}
		ds.Categories = append(ds.Categories, c)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return Dataset{}, fmt.Errorf("emocoes: %w", err)
	}
	return ds, nil
}

func emotionCategory(name string, e Emotion) (Category, error) {
	lvl, err := ParseLevel(e.Level)
	if err != nil {
		return Category{}, fmt.Errorf("%q: %w", name, err)
	}
	c := Category{ID: name, Label: name, Level: lvl, Weight: 1, Payload: e}
	if e.OriginalSize > 0 {
		c.Weight = e.OriginalSize
	}
	switch lvl {
	case LevelSecondary:
		c.ParentID = e.PrimaryEmotion
	case LevelTertiary:
		c.ParentID = e.SecondaryEmotion
	}
	if e.Colors != nil {
		switch lvl {
		case LevelPrimary:
			c.Color = e.Colors.Center.Hex
		case LevelSecondary:
			c.Color = e.Colors.Middle.Hex
		default:
			c.Color = e.Colors.Outer.Hex
		}
	}
	return c, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err == io.EOF {
		return fmt.Errorf("unexpected end of input, want %q", want)
	}
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("unexpected token %v, want %q", tok, want)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token %v, want object key", tok)
	}
	return s, nil
}
