package block

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Decode parses a serialized workspace document into a Workspace. Unknown
// block type tags are rejected here so later phases only see classified
// blocks. Variable-reference fields are resolved to their names.
func Decode(data []byte) (*Workspace, error) {
	var doc encodedDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode workspace: %w", err)
	}
	ws := &Workspace{}
	varNames := make(map[string]string, len(doc.Variables))
	for _, v := range doc.Variables {
		ws.Variables = append(ws.Variables, Variable{ID: v.ID, Name: v.Name})
		varNames[v.ID] = v.Name
	}
	for _, eb := range doc.Blocks.Blocks {
		b, err := decodeBlock(eb, varNames)
		if err != nil {
			return nil, err
		}
		ws.Blocks = append(ws.Blocks, b)
	}
	return ws, nil
}

type encodedDoc struct {
	Blocks struct {
		LanguageVersion int             `json:"languageVersion"`
		Blocks          []*encodedBlock `json:"blocks"`
	} `json:"blocks"`
	Variables []struct {
		Name string `json:"name"`
		ID   string `json:"id"`
	} `json:"variables"`
}

type encodedBlock struct {
	Type       string                     `json:"type"`
	ID         string                     `json:"id"`
	Fields     map[string]json.RawMessage `json:"fields"`
	Inputs     map[string]*encodedInput   `json:"inputs"`
	Next       *encodedNext               `json:"next"`
	ExtraState json.RawMessage            `json:"extraState"`
}

type encodedNext struct {
	Block *encodedBlock `json:"block"`
}

type encodedInput struct {
	Block  *encodedBlock `json:"block"`
	Shadow *encodedBlock `json:"shadow"`
}

func decodeBlock(eb *encodedBlock, varNames map[string]string) (*Block, error) {
	kind, ok := KindOf(eb.Type)
	if !ok {
		return nil, fmt.Errorf("block %q: unsupported type %q", eb.ID, eb.Type)
	}
	b := &Block{ID: eb.ID, Type: eb.Type, Kind: kind}
	if len(eb.Fields) > 0 {
		b.Fields = make(map[string]string, len(eb.Fields))
		for name, raw := range eb.Fields {
			v, err := decodeField(raw, varNames)
			if err != nil {
				return nil, fmt.Errorf("block %q field %q: %w", eb.ID, name, err)
			}
			b.Fields[name] = v
		}
	}
	if len(eb.Inputs) > 0 {
		b.Inputs = make(map[string]*Block, len(eb.Inputs))
		for name, in := range eb.Inputs {
			child := in.Block
			if child == nil {
				child = in.Shadow
			}
			if child == nil {
				continue
			}
			cb, err := decodeBlock(child, varNames)
			if err != nil {
				return nil, err
			}
			b.Inputs[name] = cb
		}
	}
	if eb.Next != nil && eb.Next.Block != nil {
		nb, err := decodeBlock(eb.Next.Block, varNames)
		if err != nil {
			return nil, err
		}
		b.Next = nb
	}
	if len(eb.ExtraState) > 0 {
		m, err := decodeMutation(eb.ExtraState)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", eb.ID, err)
		}
		b.Mutation = m
	}
	return b, nil
}

// decodeField normalizes the mixed field encodings: plain strings stay as
// is, numbers and booleans are canonicalized, variable references resolve
// to the variable's name.
func decodeField(raw json.RawMessage, varNames map[string]string) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'g', -1, 64), nil
	}
	var tf bool
	if err := json.Unmarshal(raw, &tf); err == nil {
		if tf {
			return "TRUE", nil
		}
		return "FALSE", nil
	}
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &ref); err == nil && ref.ID != "" {
		name, ok := varNames[ref.ID]
		if !ok {
			return "", fmt.Errorf("reference to undeclared variable %q", ref.ID)
		}
		return name, nil
	}
	return "", fmt.Errorf("unsupported field encoding %s", string(raw))
}

func decodeMutation(raw json.RawMessage) (Mutation, error) {
	var es struct {
		Name   string `json:"name"`
		Params []struct {
			Name string `json:"name"`
			ID   string `json:"id"`
		} `json:"params"`
		ElseIfCount int  `json:"elseIfCount"`
		HasElse     bool `json:"hasElse"`
		ItemCount   int  `json:"itemCount"`
	}
	if err := json.Unmarshal(raw, &es); err != nil {
		return Mutation{}, fmt.Errorf("decode extra state: %w", err)
	}
	m := Mutation{Name: es.Name, ElseIfCount: es.ElseIfCount, HasElse: es.HasElse, ItemCount: es.ItemCount}
	for _, p := range es.Params {
		m.Params = append(m.Params, p.Name)
	}
	return m, nil
}
