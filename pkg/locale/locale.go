// Copyright 2026 Benoit Pereira da Silva
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

// Package locale discovers the character encoding of the process locale from
// the POSIX environment variables.
package locale

import (
	"os"
	"strings"
)

const (
	// POSIX is the codeset of the "C" and "POSIX" locales.
	POSIX = "ANSI_X3.4-1968"

	// Fallback is used when a locale names no codeset, as in "en_US".
	// glibc gives such a locale the legacy codeset of its language
	// (ISO-8859-1 for en_US) when it is installed, and the C locale when it
	// is not. Neither can be known without the locale database, so the
	// codeset of every locale that modern systems generate is assumed.
	Fallback = "UTF-8"
)

// variables are consulted in POSIX precedence order.
var variables = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// Codeset returns the codeset of the process locale.
func Codeset() string {
	return CodesetFrom(os.LookupEnv)
}

// CodesetFrom is Codeset with a custom environment lookup.
//
// The first non-empty of LC_ALL, LC_CTYPE and LANG is parsed as
// language[_territory][.codeset][@modifier]:
//
//	""              -> ANSI_X3.4-1968
//	"C", "POSIX"    -> ANSI_X3.4-1968
//	"fr_FR"         -> UTF-8
//	"fr_FR.UTF-8"   -> UTF-8
//	"de_DE.ISO-8859-15@euro" -> ISO-8859-15
func CodesetFrom(lookup func(string) (string, bool)) string {
	for _, name := range variables {
		if value, ok := lookup(name); ok && value != "" {
			return parse(value)
		}
	}
	return POSIX
}

func parse(value string) string {
	if i := strings.IndexByte(value, '@'); i >= 0 {
		value = value[:i]
	}
	if value == "C" || value == "POSIX" {
		return POSIX
	}
	i := strings.IndexByte(value, '.')
	if i < 0 || i == len(value)-1 {
		return Fallback
	}
	return value[i+1:]
}
