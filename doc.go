/*
Package parbreak provides line-breaking for paragraphs of shaped text.

Content

Given a paragraph as a sequence of UTF-16 code units together with
per-code-unit advance widths and vertical extents, the engine in
sub-package linebreak produces a sequence of break offsets, plus width
and vertical metrics for each resulting line. Two strategies are
available: a single-pass greedy strategy and a globally optimal
minimum-cost strategy in the spirit of Knuth & Plass.

The engine does not shape text and does not paint. It consumes a small
set of collaborators: a word segmenter (sub-package wordbreak provides
one), a hyphenator (sub-package hyphen), a shaper (sub-package shaping),
a line-width delegate and tab stops (both defined in linebreak).

Base package parbreak provides the supporting machinery shared by the
segmenting sub-packages: break penalties and a rule automaton. Breaking
rules are short regular expressions, i.e. finite state automata. Every
step within a rule is performed by executing a function. This function
recognizes a single code-point class and returns another function,
representing the expectation for the next code-point. This kind of
matching by function is continued until a rule is accepted or aborted.

Penalties

Rules do not signal break opportunities with true/false, but rather with
a weighted "penalty". Every break is connoted with an integer value,
representing the desirability of the break. Negative values denote a
merit. High enough penalties signal the complete suppression of a break
opportunity.

(1) Mandatory breaks have a penalty/merit of -1000 (InfiniteMerits)

(2) Inhibited breaks have a penalty >= 1000 (InfinitePenalty)

(3) Neutral positions have a penalty of 0.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package parbreak

// We define constants for flagging break points as infinitely bad and
// infinitely good, respectively.
const (
	InfinitePenalty = 1000
	InfiniteMerits  = -1000
)
