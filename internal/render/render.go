// Package render formats tensors as plain text for CLI output.
package render

import (
	"fmt"
	"strings"

	"github.com/tensorkata/tensorkata/internal/tensor"
)

// Text renders a 1D or 2D tensor as a dtype/shape header followed by its
// elements in aligned columns.
func Text(r *tensor.RawTensor) string {
	header := fmt.Sprintf("%s%v", r.DType(), r.Shape())

	elems := elementStrings(r)
	width := 0
	for _, e := range elems {
		if len(e) > width {
			width = len(e)
		}
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')

	switch len(r.Shape()) {
	case 1:
		b.WriteString(rowText(elems, width))
	case 2:
		rows, cols := r.Shape()[0], r.Shape()[1]
		b.WriteByte('[')
		for i := 0; i < rows; i++ {
			if i > 0 {
				b.WriteString("\n ")
			}
			b.WriteString(rowText(elems[i*cols:(i+1)*cols], width))
		}
		b.WriteByte(']')
	default:
		panic(fmt.Sprintf("render: only 1D and 2D tensors supported, got shape %v", r.Shape()))
	}

	b.WriteByte('\n')
	return b.String()
}

// rowText renders one row as [a b c] with right-aligned elements.
func rowText(elems []string, width int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.Repeat(" ", width-len(e)))
		b.WriteString(e)
	}
	b.WriteByte(']')
	return b.String()
}

func elementStrings(r *tensor.RawTensor) []string {
	out := make([]string, r.NumElements())
	switch r.DType() {
	case tensor.Float32:
		for i, v := range r.AsFloat32() {
			out[i] = fmt.Sprintf("%g", v)
		}
	case tensor.Float64:
		for i, v := range r.AsFloat64() {
			out[i] = fmt.Sprintf("%g", v)
		}
	case tensor.Int32:
		for i, v := range r.AsInt32() {
			out[i] = fmt.Sprintf("%d", v)
		}
	case tensor.Int64:
		for i, v := range r.AsInt64() {
			out[i] = fmt.Sprintf("%d", v)
		}
	case tensor.Bool:
		for i, v := range r.AsBool() {
			out[i] = fmt.Sprintf("%t", v)
		}
	default:
		panic(fmt.Sprintf("render: unsupported dtype %s", r.DType()))
	}
	return out
}
