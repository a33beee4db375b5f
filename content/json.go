// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package content

import (
	"encoding/json"
	"fmt"
)

// Content nodes are persisted as jsonb with a "kind" discriminator per node.
// NodeList implements the codec so nested lists (table cells, areas, match
// branches) round-trip transparently.

type nodeEnvelope struct {
	Kind Kind `json:"kind"`
}

// MarshalJSON encodes each node as an object carrying its kind.
func (l NodeList) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(l))
	for _, n := range l {
		raw, err := MarshalNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a list of kind-discriminated nodes.
func (l *NodeList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	nodes := make(NodeList, 0, len(raws))
	for _, raw := range raws {
		n, err := UnmarshalNode(raw)
		if err != nil {
			return err
		}
		nodes = append(nodes, n)
	}
	*l = nodes
	return nil
}

// MarshalNode encodes a single node with its kind discriminator.
func MarshalNode(n Node) (json.RawMessage, error) {
	if n == nil {
		return nil, fmt.Errorf("nil content node")
	}
	body, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	kind, err := json.Marshal(nodeEnvelope{Kind: n.Kind()})
	if err != nil {
		return nil, err
	}
	// splice {"kind":...} and the node body into one object
	if string(body) == "{}" {
		return kind, nil
	}
	merged := append(kind[:len(kind)-1], ',')
	merged = append(merged, body[1:]...)
	return merged, nil
}

// UnmarshalNode decodes a single kind-discriminated node.
func UnmarshalNode(data json.RawMessage) (Node, error) {
	var env nodeEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	n := newNode(env.Kind)
	if n == nil {
		return nil, fmt.Errorf("unknown content kind %q", env.Kind)
	}
	if err := json.Unmarshal(data, n); err != nil {
		return nil, err
	}
	return n, nil
}

func newNode(k Kind) Node {
	switch k {
	case KindParagraph:
		return &Paragraph{}
	case KindTable:
		return &Table{}
	case KindImageRef:
		return &ImageRef{}
	case KindDocumentObjectRef:
		return &DocumentObjectRef{}
	case KindArea:
		return &Area{}
	case KindFlowArea:
		return &FlowArea{}
	case KindFirstMatch:
		return &FirstMatch{}
	case KindSelectByLanguage:
		return &SelectByLanguage{}
	default:
		return nil
	}
}
