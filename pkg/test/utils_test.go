/*
 * Copyright (C) 2022 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	table := CreateFile(t, "table.txt", ASTable)
	content, err := os.ReadFile(table)
	require.NoError(t, err)
	require.Equal(t, ASTable, string(content))

	opts := InitConfig(t, fmt.Sprintf(`
ingest:
  table: %s
  skipMalformed: true
write:
  format: yaml
`, table))
	require.Equal(t, table, opts.Ingest.Table)
	require.True(t, opts.Ingest.SkipMalformed)
	require.Equal(t, "yaml", opts.Write.Format)
	require.Equal(t, "trie", opts.Resolve.Engine)
}
