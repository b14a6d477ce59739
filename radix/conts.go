// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

// Package radix builds a hybrid trie/radix decision tree from parsed
// route patterns and compiles it into a matcher that answers, for a
// single input byte slice, which registered destination (if any) it
// resolves to and which parameter spans it captured along the way.
package radix

// DefaultUntil is the delimiter byte a parametric step falls back to
// when a pattern does not specify one explicitly.
const DefaultUntil = '/'

// maxDiagDepth bounds how deep Dump will recurse before giving
// up on a pathological tree; legitimate route sets never get close.
const maxDiagDepth = 256
