// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"gitlab.com/tozd/go/errors"
)

// JSONSchemaExtend tightens the generated schema where struct tags cannot:
// a rule's replacement may be empty (deletion rules), so only name and
// pattern stay required.
func (Rule) JSONSchemaExtend(jss *jsonschema.Schema) {
	jss.Required = []string{"name", "pattern"}
}

// 📐 Schema renders the JSON Schema for the config file format, indented
// for checking into editors and CI.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{}

	schema := reflector.Reflect(&Config{})
	schema.ID = "https://github.com/walteh/fixrc/config"
	schema.Title = "fixrc configuration"
	schema.Description = "Ordered pattern rewrites applied to source files, with per-file scoping."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.Errorf("marshaling schema: %w", err)
	}

	return data, nil
}
