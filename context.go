// Copyright (c) 2026 blairtcg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package arclog

import "context"

type contextKey struct{}

var _contextKeyInstance = contextKey{}

// WithContext returns a copy of ctx carrying the engine.
func WithContext(ctx context.Context, e *Engine) context.Context {
	return context.WithValue(ctx, _contextKeyInstance, e)
}

// FromContext retrieves the engine stored in ctx.
//
// If the context does not carry one, the package default engine is
// returned instead, so the caller always receives a working engine.
func FromContext(ctx context.Context) *Engine {
	if e, ok := ctx.Value(_contextKeyInstance).(*Engine); ok {
		return e
	}
	return Default()
}
