// Copyright 2026 Tensorkata. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package puzzles

import (
	"fmt"
	"sort"

	"github.com/tensorkata/tensorkata/tensor"
)

// Labeled pairs a tensor with the name it carries in a demonstration.
type Labeled struct {
	Label string
	Value *tensor.RawTensor
}

// Demo is one evaluation of a puzzle on its sample input.
type Demo struct {
	Inputs []Labeled
	Output Labeled
}

// Puzzle describes one exercise: its contract and a runnable demonstration
// on a fixed sample input.
type Puzzle struct {
	Name     string
	Brief    string
	Contract string
	Demo     func() Demo
}

// Registry maps puzzle names to their descriptions and demo runners.
type Registry struct {
	puzzles map[string]Puzzle
}

// NewRegistry creates a registry holding all twenty-one puzzles.
func NewRegistry() *Registry {
	r := &Registry{puzzles: make(map[string]Puzzle)}
	r.registerAll()
	return r
}

// Get returns the puzzle with the given name.
func (r *Registry) Get(name string) (Puzzle, bool) {
	p, ok := r.puzzles[name]
	return p, ok
}

// Names returns all puzzle names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.puzzles))
	for name := range r.puzzles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run evaluates the named puzzle's demonstration.
func (r *Registry) Run(name string) (Demo, error) {
	p, ok := r.puzzles[name]
	if !ok {
		return Demo{}, fmt.Errorf("unknown puzzle: %s", name)
	}
	return p.Demo(), nil
}

func (r *Registry) register(p Puzzle) {
	r.puzzles[p.Name] = p
}

// vec builds a fixed sample vector; sample shapes are compile-time constants,
// so a construction error is a programming bug.
func vec[T tensor.DType](data ...T) *tensor.Tensor[T] {
	t, err := tensor.FromSlice(data, tensor.Shape{len(data)})
	if err != nil {
		panic(err)
	}
	return t
}

func mat[T tensor.DType](rows, cols int, data ...T) *tensor.Tensor[T] {
	t, err := tensor.FromSlice(data, tensor.Shape{rows, cols})
	if err != nil {
		panic(err)
	}
	return t
}

//nolint:funlen // Flat catalog of all twenty-one puzzles.
func (r *Registry) registerAll() {
	r.register(Puzzle{
		Name:     "ones",
		Brief:    "vector of ones from an index comparison",
		Contract: "ones(n)[k] == 1 for every k in [0, n)",
		Demo: func() Demo {
			out := Ones(6)
			return Demo{
				Inputs: []Labeled{{Label: "n", Value: vec[int64](6).Raw()}},
				Output: Labeled{Label: "ones(n)", Value: out.Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "sum",
		Brief:    "total of a vector via a dot product with ones",
		Contract: "sum(a) is the one-element vector holding Σ a[k]",
		Demo: func() Demo {
			a := vec[int64](3, 1, 4, 1, 5)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}},
				Output: Labeled{Label: "sum(a)", Value: Sum(a).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "outer",
		Brief:    "outer product of two vectors",
		Contract: "outer(a, b)[i,j] == a[i] * b[j]",
		Demo: func() Demo {
			a := vec[int64](1, 2, 3)
			b := vec[int64](10, 20)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}, {Label: "b", Value: b.Raw()}},
				Output: Labeled{Label: "outer(a, b)", Value: Outer(a, b).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "diag",
		Brief:    "main diagonal of a square matrix",
		Contract: "diag(a)[k] == a[k,k]",
		Demo: func() Demo {
			a := mat[int64](3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}},
				Output: Labeled{Label: "diag(a)", Value: Diag(a).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "eye",
		Brief:    "identity matrix from an index equality mask",
		Contract: "eye(n)[i,j] == 1 iff i == j",
		Demo: func() Demo {
			return Demo{
				Inputs: []Labeled{{Label: "n", Value: vec[int64](4).Raw()}},
				Output: Labeled{Label: "eye(n)", Value: Eye(4).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "triu",
		Brief:    "upper-triangular ones matrix",
		Contract: "triu(n)[i,j] == 1 iff j >= i",
		Demo: func() Demo {
			return Demo{
				Inputs: []Labeled{{Label: "n", Value: vec[int64](4).Raw()}},
				Output: Labeled{Label: "triu(n)", Value: Triu(4).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "cumsum",
		Brief:    "prefix sums via the triangular mask",
		Contract: "cumsum(a)[j] == Σ a[i] for i <= j",
		Demo: func() Demo {
			a := vec[int64](1, 2, 3, 4, 5)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}},
				Output: Labeled{Label: "cumsum(a)", Value: CumSum(a).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "diff",
		Brief:    "same-length first difference",
		Contract: "diff(a)[k] == a[k] - a[k-1]; diff(a)[0] == a[0]",
		Demo: func() Demo {
			a := vec[int64](2, 5, 4, 9)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}},
				Output: Labeled{Label: "diff(a)", Value: Diff(a).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "vstack",
		Brief:    "stack two vectors into a 2×n matrix",
		Contract: "vstack(a, b)[0] == a and vstack(a, b)[1] == b",
		Demo: func() Demo {
			a := vec[int64](1, 2, 3)
			b := vec[int64](4, 5, 6)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}, {Label: "b", Value: b.Raw()}},
				Output: Labeled{Label: "vstack(a, b)", Value: VStack(a, b).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "roll",
		Brief:    "cyclic left shift by one",
		Contract: "roll(a)[k] == a[(k+1) mod n]",
		Demo: func() Demo {
			a := vec[int64](1, 2, 3, 4, 5)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}},
				Output: Labeled{Label: "roll(a)", Value: Roll(a).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "flip",
		Brief:    "exact reversal of a vector",
		Contract: "flip(a)[k] == a[n-1-k]",
		Demo: func() Demo {
			a := vec[int64](1, 2, 3, 4, 5)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}},
				Output: Labeled{Label: "flip(a)", Value: Flip(a).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "compress",
		Brief:    "left-pack masked values, zeros after",
		Contract: "compress(g, v, n) keeps v[k] where g[k], packed from index 0",
		Demo: func() Demo {
			g := vec(true, false, true, false, true)
			v := vec[int64](10, 20, 30, 40, 50)
			return Demo{
				Inputs: []Labeled{{Label: "g", Value: g.Raw()}, {Label: "v", Value: v.Raw()}},
				Output: Labeled{Label: "compress(g, v, 5)", Value: Compress(g, v, 5).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "pad_to",
		Brief:    "copy into a vector of a different length",
		Contract: "pad_to(a, n) copies the first min(len(a), n) values, zero-pads the rest",
		Demo: func() Demo {
			a := vec[int64](1, 2, 3)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}},
				Output: Labeled{Label: "pad_to(a, 5)", Value: PadTo(a, 5).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "sequence_mask",
		Brief:    "zero out positions past each row's length",
		Contract: "sequence_mask(v, len)[i,j] == v[i,j] if j < len[i], else 0",
		Demo: func() Demo {
			v := mat[int64](2, 4, 1, 2, 3, 4, 5, 6, 7, 8)
			lengths := vec[int64](3, 2)
			return Demo{
				Inputs: []Labeled{{Label: "values", Value: v.Raw()}, {Label: "lengths", Value: lengths.Raw()}},
				Output: Labeled{Label: "sequence_mask(values, lengths)", Value: SequenceMask(v, lengths).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "bincount",
		Brief:    "histogram of small non-negative integers",
		Contract: "bincount(a, m)[j] == count of k with a[k] == j",
		Demo: func() Demo {
			a := vec[int64](0, 1, 1, 2, 2, 2, 4)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}},
				Output: Labeled{Label: "bincount(a, 5)", Value: Bincount(a, 5).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "scatter_add",
		Brief:    "bucket-sum values by a link vector",
		Contract: "scatter_add(v, link, m)[j] == Σ v[k] where link[k] == j",
		Demo: func() Demo {
			v := vec[int64](5, 1, 7, 2, 3)
			link := vec[int64](0, 0, 1, 2, 2)
			return Demo{
				Inputs: []Labeled{{Label: "values", Value: v.Raw()}, {Label: "link", Value: link.Raw()}},
				Output: Labeled{Label: "scatter_add(values, link, 3)", Value: ScatterAdd(v, link, 3).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "flatten",
		Brief:    "matrix to row-major vector",
		Contract: "flatten(a)[i*cols + j] == a[i,j]",
		Demo: func() Demo {
			a := mat[int64](2, 3, 1, 2, 3, 4, 5, 6)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}},
				Output: Labeled{Label: "flatten(a)", Value: Flatten(a).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "linspace",
		Brief:    "evenly spaced values, inclusive endpoints",
		Contract: "linspace(i, j, n) spans [i, j] in n steps; n == 1 gives [i]",
		Demo: func() Demo {
			out := Linspace(0.0, 2.0, 5)
			return Demo{
				Inputs: []Labeled{{Label: "i, j, n", Value: vec(0.0, 2.0, 5.0).Raw()}},
				Output: Labeled{Label: "linspace(0, 2, 5)", Value: out.Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "heaviside",
		Brief:    "step function with a custom value at zero",
		Contract: "heaviside(a, b) is 0 where a < 0, b where a == 0, 1 where a > 0",
		Demo: func() Demo {
			a := vec[int64](-2, 0, 3, 0, -1)
			b := vec[int64](7, 7, 7, 9, 9)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}, {Label: "b", Value: b.Raw()}},
				Output: Labeled{Label: "heaviside(a, b)", Value: Heaviside(a, b).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "repeat",
		Brief:    "stack d copies of a vector",
		Contract: "repeat(a, d)[i,j] == a[j] for every i in [0, d)",
		Demo: func() Demo {
			a := vec[int64](1, 2, 3)
			return Demo{
				Inputs: []Labeled{{Label: "a", Value: a.Raw()}},
				Output: Labeled{Label: "repeat(a, 3)", Value: Repeat(a, 3).Raw()},
			}
		},
	})
	r.register(Puzzle{
		Name:     "bucketize",
		Brief:    "index into sorted boundaries",
		Contract: "bucketize(v, b)[k] == count of boundaries <= v[k]",
		Demo: func() Demo {
			v := vec[int64](1, 5, 10, 3)
			b := vec[int64](2, 4, 8)
			return Demo{
				Inputs: []Labeled{{Label: "v", Value: v.Raw()}, {Label: "boundaries", Value: b.Raw()}},
				Output: Labeled{Label: "bucketize(v, boundaries)", Value: Bucketize(v, b).Raw()},
			}
		},
	})
}
