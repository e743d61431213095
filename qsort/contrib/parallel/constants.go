// Copyright 2026 sifchain-assessment Authors
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

package parallel

// Thresholds for splitting work across the pool.
const (
	// minParallelSegment: segments shorter than this are sorted by a
	// single worker without further splitting.
	minParallelSegment = 2048

	// segmentsPerWorker: split until this many segments per worker are
	// pending, so uneven partitions still balance.
	segmentsPerWorker = 4

	// minCheckChunk: IsSorted only fans out when every worker gets at
	// least this many elements.
	minCheckChunk = 4096
)
