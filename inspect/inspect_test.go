/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package inspect_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/nsx/config"
	"dirpx.dev/nsx/inspect"
)

type pair[A, B any] struct {
	First  A
	Second B
}

type box[T any] struct {
	Val T
}

type plain struct{ X int }

func TestTypeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, reflect.TypeOf(0), inspect.TypeOf[int]())
	assert.Equal(t, reflect.TypeOf(plain{}), inspect.TypeOf[plain]())

	// Interface types have no instance to reflect on; TypeOf still works.
	it := inspect.TypeOf[interface{ Error() string }]()
	assert.Equal(t, reflect.Interface, it.Kind())
}

func TestZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, inspect.Zero[int]())
	assert.Equal(t, plain{}, inspect.Zero[plain]())
	assert.Nil(t, inspect.Zero[*plain]())
}

func TestTypeParams(t *testing.T) {
	t.Parallel()

	params, ok := inspect.TypeParams(reflect.TypeOf(pair[int, string]{})).Get()
	require.True(t, ok)
	assert.Equal(t, []string{"int", "string"}, params)
}

func TestTypeParams_SingleParam(t *testing.T) {
	t.Parallel()

	params, ok := inspect.TypeParams(reflect.TypeOf(box[bool]{})).Get()
	require.True(t, ok)
	assert.Equal(t, []string{"bool"}, params)
}

func TestTypeParams_Nested(t *testing.T) {
	t.Parallel()

	params, ok := inspect.TypeParams(reflect.TypeOf(pair[box[int], string]{})).Get()
	require.True(t, ok)
	require.Len(t, params, 2)
	assert.Equal(t, "string", params[1])
	// The nested instantiation stays one token.
	assert.Contains(t, params[0], "box[int]")
}

func TestTypeParams_UnwrapsContainers(t *testing.T) {
	t.Parallel()

	params, ok := inspect.TypeParams(reflect.TypeOf([]*pair[int, string]{})).Get()
	require.True(t, ok)
	assert.Equal(t, []string{"int", "string"}, params)
}

func TestTypeParams_NonGeneric(t *testing.T) {
	t.Parallel()

	assert.True(t, inspect.TypeParams(reflect.TypeOf(plain{})).IsNone())
	assert.True(t, inspect.TypeParams(reflect.TypeOf(0)).IsNone())
	assert.True(t, inspect.TypeParams(nil).IsNone())

	// Anonymous types never normalize to a name.
	assert.True(t, inspect.TypeParams(reflect.TypeOf(struct{ X int }{})).IsNone())
}

func TestTypeParam(t *testing.T) {
	t.Parallel()

	pt := reflect.TypeOf(pair[int, string]{})

	assert.Equal(t, "int", inspect.TypeParam(pt, 0).OrZero())
	assert.Equal(t, "string", inspect.TypeParam(pt, 1).OrZero())
	assert.True(t, inspect.TypeParam(pt, 2).IsNone())
	assert.True(t, inspect.TypeParam(pt, -1).IsNone())

	assert.Equal(t, "int", inspect.FirstTypeParam(pt).OrZero())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()

	base, err := inspect.Normalize(reflect.TypeOf([]**plain{}), cfg)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(plain{}), base)

	// Map: element side preferred by default.
	base, err = inspect.Normalize(reflect.TypeOf(map[string]plain{}), cfg)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(plain{}), base)

	_, err = inspect.Normalize(nil, cfg)
	assert.ErrorIs(t, err, inspect.ErrNilType)

	_, err = inspect.Normalize(reflect.TypeOf(struct{}{}), cfg)
	assert.ErrorIs(t, err, inspect.ErrTypeNotNamed)
}

func TestNormalize_MaxUnwrapLimit(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig(config.WithMaxUnwrap(1))

	// **plain needs two unwraps; one is not enough.
	var x **plain
	_, err := inspect.Normalize(reflect.TypeOf(x), cfg)
	assert.ErrorIs(t, err, inspect.ErrTypeNotNamed)
}

func TestNew(t *testing.T) {
	t.Parallel()

	v, ok := inspect.New(reflect.TypeOf(plain{})).Get()
	require.True(t, ok)
	assert.Equal(t, plain{}, v)

	p, ok := inspect.New(reflect.TypeOf(&plain{})).Get()
	require.True(t, ok)
	require.IsType(t, &plain{}, p)
	assert.NotNil(t, p)

	assert.True(t, inspect.New(nil).IsNone())
	assert.True(t, inspect.New(inspect.TypeOf[error]()).IsNone())
	assert.True(t, inspect.New(reflect.TypeOf(func() {})).IsNone())
}

func TestNewOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, plain{}, inspect.NewOf[plain]().OrZero())
	assert.True(t, inspect.NewOf[error]().IsNone())
}
