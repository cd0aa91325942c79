// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package gtrie_test

import (
	"fmt"
	"slices"

	gtrie "github.com/absolutelightning/go-generic-trie"
)

func ExampleTree() {
	t := gtrie.NewTree[rune, int]()
	t.Add(slices.Values([]rune("this")), 1)
	t.Add(slices.Values([]rune("trie")), 2)
	t.Add(slices.Values([]rune("a")), 4)

	fmt.Println(t.HasKey(slices.Values([]rune("trie"))))
	fmt.Println(t.HasKey(slices.Values([]rune("tri"))))
	fmt.Println(t.Get(slices.Values([]rune("a"))))
	fmt.Println(t.Get(slices.Values([]rune("missing"))))
	// Output:
	// true
	// false
	// 4 true
	// 0 false
}

func ExampleTree_ApplyOnValue() {
	t := gtrie.NewTree[string, int]()
	t.Add(gtrie.Keys("GET", "/users"), 10)

	err := t.ApplyOnValue(gtrie.Keys("GET", "/users"), func(hits *int) { *hits++ })
	fmt.Println(err)
	fmt.Println(t.Get(gtrie.Keys("GET", "/users")))

	err = t.ApplyOnValue(gtrie.Keys("POST", "/users"), func(hits *int) { *hits++ })
	fmt.Println(err)
	// Output:
	// <nil>
	// 11 true
	// gtrie: key not found
}

func ExampleSet() {
	s := gtrie.NewSet[rune]()
	s.Add(slices.Values([]rune("a")))
	s.Add(slices.Values([]rune("ab")))

	fmt.Println(s.HasKey(slices.Values([]rune("a"))))
	fmt.Println(s.HasKey(slices.Values([]rune("ab"))))
	// Output:
	// false
	// true
}

func ExampleCursor() {
	t := gtrie.NewTree[rune, string]()
	t.Add(slices.Values([]rune("he")), "pronoun")
	t.Add(slices.Values([]rune("hello")), "greeting")

	c := t.Cursor()
	for _, r := range "hello world" {
		if !c.Next(r) {
			break
		}
		if v, ok := c.Value(); ok {
			fmt.Println(c.Depth(), v)
		}
	}
	// Output:
	// 2 pronoun
	// 5 greeting
}
