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

// RefType classifies the target entity of a reference.
type RefType string

const (
	RefDocumentObject RefType = "documentObject"
	RefImage          RefType = "image"
	RefTextStyle      RefType = "textStyle"
	RefParagraphStyle RefType = "paragraphStyle"
	RefVariable       RefType = "variable"
	RefDisplayRule    RefType = "displayRule"
)

// Ref is a typed pointer from one migration entity to another.
type Ref struct {
	Type RefType `json:"type"`
	ID   string  `json:"id"`
}

// CollectRefs walks the given content nodes recursively and returns every
// reference reachable from them, in walk order. Duplicates are preserved;
// use DistinctRefs when a set is needed.
func CollectRefs(nodes []Node) []Ref {
	var acc []Ref
	for _, n := range nodes {
		if n != nil {
			n.collectRefs(&acc)
		}
	}
	return acc
}

// DistinctRefs removes duplicate references, keeping first-seen order.
func DistinctRefs(refs []Ref) []Ref {
	seen := make(map[Ref]struct{}, len(refs))
	out := make([]Ref, 0, len(refs))
	for _, r := range refs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// RefIDs returns the ids of all references of the given type, first-seen
// order, deduplicated.
func RefIDs(refs []Ref, t RefType) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range refs {
		if r.Type != t {
			continue
		}
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r.ID)
	}
	return out
}

// ContainsRef reports whether refs contains a reference of the given type
// and id.
func ContainsRef(refs []Ref, t RefType, id string) bool {
	for _, r := range refs {
		if r.Type == t && r.ID == id {
			return true
		}
	}
	return false
}

func addRef(acc *[]Ref, t RefType, id string) {
	if id != "" {
		*acc = append(*acc, Ref{Type: t, ID: id})
	}
}
