// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

/*
Package gtrie implements a generic prefix tree over sequences of comparable
symbols.

Tree maps sequences to values, Set only records them. Both share the
nodes of common prefixes and match input one symbol at a time, which makes
them a good fit for dictionaries that are small compared to the space of
possible inputs. There is no path compression and keys cannot be removed,
only dropped all at once with Clear.

Sequences are passed as iter.Seq values and consumed once; Keys builds one
from a list of symbols and slices.Values or any other iterator works too.

Neither type synchronizes access.
*/
package gtrie
