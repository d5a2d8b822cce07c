package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-carousel/common"
)

// gltfJSON builds a one-mesh document whose POSITION accessor covers points.
func gltfJSON(t *testing.T, points []common.Vec3, withMinMax bool, uri string) []byte {
	t.Helper()

	acc := map[string]any{
		"bufferView":    0,
		"componentType": gltfComponentTypeFloat,
		"count":         len(points),
		"type":          gltfAccessorTypeVec3,
	}
	if withMinMax {
		b := emptyBounds()
		for _, p := range points {
			b = b.Extend(Bounds{Min: p, Max: p})
		}
		acc["min"] = b.Min[:]
		acc["max"] = b.Max[:]
	}

	buffer := map[string]any{"byteLength": len(points) * 12}
	if uri != "" {
		buffer["uri"] = uri
	}

	doc := map[string]any{
		"asset":       map[string]any{"version": "2.0"},
		"meshes":      []any{map[string]any{"name": "body", "primitives": []any{map[string]any{"attributes": map[string]int{"POSITION": 0}}}}},
		"accessors":   []any{acc},
		"bufferViews": []any{map[string]any{"buffer": 0, "byteLength": len(points) * 12}},
		"buffers":     []any{buffer},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func vertexBytes(t *testing.T, points []common.Vec3) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, points))
	return buf.Bytes()
}

func pad4(b []byte, fill byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, fill)
	}
	return b
}

// buildGLB packs a document and its vertex data into a GLB container.
func buildGLB(t *testing.T, points []common.Vec3, withMinMax bool) []byte {
	t.Helper()

	jsonChunk := pad4(gltfJSON(t, points, withMinMax, ""), ' ')
	binChunk := pad4(vertexBytes(t, points), 0)

	var out bytes.Buffer
	total := 12 + 8 + len(jsonChunk) + 8 + len(binChunk)
	require.NoError(t, binary.Write(&out, binary.LittleEndian, gltfGLBHeader{Magic: gltfGLBMagic, Version: gltfGLBVersion, Length: uint32(total)}))
	require.NoError(t, binary.Write(&out, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(jsonChunk)), ChunkType: gltfGLBChunkJSON}))
	out.Write(jsonChunk)
	require.NoError(t, binary.Write(&out, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(binChunk)), ChunkType: gltfGLBChunkBIN}))
	out.Write(binChunk)
	return out.Bytes()
}

var tallBox = []common.Vec3{
	{-1, 0, -0.5},
	{1, 4, 0.5},
	{0, 2, 0},
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func assertVec3(t *testing.T, expected, actual common.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-5, "component %d", i)
	}
}

func TestBoundsNormalization(t *testing.T) {
	tests := []struct {
		name       string
		bounds     Bounds
		wantScale  float32
		wantOffset common.Vec3
	}{
		{
			name:       "tall box",
			bounds:     Bounds{Min: common.Vec3{-1, 0, -0.5}, Max: common.Vec3{1, 4, 0.5}},
			wantScale:  0.35,
			wantOffset: common.Vec3{0, -0.7, 0},
		},
		{
			name:       "off-center cube",
			bounds:     Bounds{Min: common.Vec3{2, 2, 2}, Max: common.Vec3{4, 4, 4}},
			wantScale:  0.7,
			wantOffset: common.Vec3{-2.1, -2.1, -2.1},
		},
		{
			name:       "degenerate point",
			bounds:     Bounds{Min: common.Vec3{1, 1, 1}, Max: common.Vec3{1, 1, 1}},
			wantScale:  1.4,
			wantOffset: common.Vec3{-1.4, -1.4, -1.4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, scale := tt.bounds.Normalization(DefaultTargetSize)
			assert.InDelta(t, tt.wantScale, scale, 1e-5)
			assertVec3(t, tt.wantOffset, offset)
		})
	}
}

func TestEmptyBounds(t *testing.T) {
	b := emptyBounds()
	assert.True(t, b.Empty())
	assert.Equal(t, common.Vec3{}, b.Size())

	b = b.Extend(Bounds{Min: common.Vec3{1, 2, 3}, Max: common.Vec3{1, 2, 3}})
	assert.False(t, b.Empty())
	assert.Equal(t, common.Vec3{1, 2, 3}, b.Center())
}

func TestParseGLB(t *testing.T) {
	for _, withMinMax := range []bool{true, false} {
		t.Run(fmt.Sprintf("minmax=%v", withMinMax), func(t *testing.T) {
			p := newGLTFParser()
			require.NoError(t, p.ParseReader(bytes.NewReader(buildGLB(t, tallBox, withMinMax)), true))

			b, err := p.Bounds()
			require.NoError(t, err)
			assertVec3(t, common.Vec3{-1, 0, -0.5}, b.Min)
			assertVec3(t, common.Vec3{1, 4, 0.5}, b.Max)
		})
	}
}

func TestParseGLTFWithDataURI(t *testing.T) {
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(vertexBytes(t, tallBox))
	path := writeFile(t, t.TempDir(), "box.gltf", gltfJSON(t, tallBox, false, uri))

	p := newGLTFParser()
	require.NoError(t, p.Parse(path))
	b, err := p.Bounds()
	require.NoError(t, err)
	assertVec3(t, common.Vec3{0, 2, 0}, b.Center())
}

func TestParseGLTFWithExternalBuffer(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "box.bin", vertexBytes(t, tallBox))
	path := writeFile(t, dir, "box.gltf", gltfJSON(t, tallBox, false, "box.bin"))

	p := newGLTFParser()
	require.NoError(t, p.Parse(path))
	b, err := p.Bounds()
	require.NoError(t, err)
	assertVec3(t, common.Vec3{2, 4, 1}, b.Size())
}

func TestParseErrors(t *testing.T) {
	valid := buildGLB(t, tallBox, true)

	badMagic := append([]byte{}, valid...)
	binary.LittleEndian.PutUint32(badMagic[0:4], 0xDEADBEEF)

	badVersion := append([]byte{}, valid...)
	binary.LittleEndian.PutUint32(badVersion[4:8], 1)

	headerOnly := valid[:12]

	tests := []struct {
		name    string
		data    []byte
		isGLB   bool
		wantErr error
	}{
		{name: "bad magic", data: badMagic, isGLB: true, wantErr: errInvalidGLBMagic},
		{name: "bad version", data: badVersion, isGLB: true, wantErr: errInvalidGLBVersion},
		{name: "no json chunk", data: headerOnly, isGLB: true, wantErr: errMissingJSONChunk},
		{name: "gltf 1.0", data: []byte(`{"asset":{"version":"1.0"}}`), wantErr: errInvalidGLTFVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newGLTFParser().ParseReader(bytes.NewReader(tt.data), tt.isGLB)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("too small", func(t *testing.T) {
		assert.Error(t, newGLTFParser().ParseReader(bytes.NewReader([]byte{1, 2}), true))
	})
}

func TestBoundsWithoutPositions(t *testing.T) {
	p := newGLTFParser()
	require.NoError(t, p.ParseReader(strings.NewReader(`{"asset":{"version":"2.0"},"meshes":[{"primitives":[{"attributes":{"NORMAL":0}}]}]}`), false))

	_, err := p.Bounds()
	assert.ErrorIs(t, err, errNoPositions)
}

func TestParseCatalogFallbacks(t *testing.T) {
	entries, err := ParseCatalog(strings.NewReader(`[
		{"id": "knight", "role": "tank", "phrases": ["Holds", "the line."], "desc": "unused", "url": "knight.glb", "scale": 1.2},
		{"label": "Rogue", "desc": "Quick.", "url": "rogue.glb"},
		{"url": "ghost.glb"}
	]`))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	knight := entries[0].Metadata()
	assert.Equal(t, "knight", knight.Label)
	assert.Equal(t, "KNIGHT", knight.DisplayLabel())
	assert.Equal(t, "TANK", knight.DisplayRole())
	assert.Equal(t, "Holds the line.", knight.Description)
	assert.Equal(t, float32(1.2), entries[0].BaseScale())

	rogue := entries[1].Metadata()
	assert.Equal(t, "Rogue", rogue.Label)
	assert.Equal(t, "—", rogue.DisplayRole())
	assert.Equal(t, "Quick.", rogue.Description)
	assert.Equal(t, float32(1), entries[1].BaseScale())
	_, err = uuid.Parse(rogue.ID)
	assert.NoError(t, err)

	ghost := entries[2].Metadata()
	assert.Equal(t, "—", ghost.DisplayLabel())
	assert.Equal(t, "—", ghost.DisplayDescription())
	assert.NotEqual(t, rogue.ID, ghost.ID)
}

func TestParseCatalogErrors(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(`[]`))
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = ParseCatalog(strings.NewReader(`{"id": "not-an-array"}`))
	assert.Error(t, err)

	_, err = ReadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReadCatalogResolvesRelativeURLs(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere", "abs.glb")
	catalog, err := json.Marshal([]map[string]string{
		{"id": "a", "url": "models/a.glb"},
		{"id": "b", "url": abs},
	})
	require.NoError(t, err)
	path := writeFile(t, dir, "models.json", catalog)

	entries, err := ReadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "models", "a.glb"), entries[0].URL)
	assert.Equal(t, abs, entries[1].URL)
}

func TestLoadItemsSkipsFailuresAndKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.glb", buildGLB(t, tallBox, true))
	c := writeFile(t, dir, "c.glb", buildGLB(t, []common.Vec3{{0, 0, 0}, {2, 2, 2}}, false))
	corrupt := writeFile(t, dir, "d.glb", []byte("definitely not a glb"))

	entries := []CatalogEntry{
		{ID: "a", Label: "Alpha", URL: a, Scale: 1.5},
		{ID: "b", URL: filepath.Join(dir, "missing.glb")},
		{ID: "c", Label: "Charlie", URL: c},
		{ID: "d", URL: corrupt},
		{ID: "e", URL: writeFile(t, dir, "e.obj", []byte("v 0 0 0"))},
		{ID: "f"},
	}

	l := NewLoader(WithWorkers(3))
	items, err := l.LoadItems(entries)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 0, items[0].Index)
	assert.Equal(t, "a", items[0].Meta.ID)
	assert.Equal(t, float32(1.5), items[0].BaseScale)
	assert.Equal(t, a, items[0].Node.ModelRef())
	assert.False(t, items[0].Node.Visible())

	assert.Equal(t, 1, items[1].Index)
	assert.Equal(t, "CHARLIE", items[1].Node.Name())
	offset, scale := items[1].Node.ModelTransform()
	assert.InDelta(t, 0.7, scale, 1e-5)
	assertVec3(t, common.Vec3{-0.7, -0.7, -0.7}, offset)

	info, ok := l.Get(a)
	require.True(t, ok)
	assert.Positive(t, info.Bytes)
	assert.InDelta(t, 0.35, info.Scale, 1e-5)
}

func TestLoadItemsScaleHintBecomesBaseScale(t *testing.T) {
	path := writeFile(t, t.TempDir(), "box.glb", buildGLB(t, tallBox, true))
	entries := []CatalogEntry{
		{ID: "plain", URL: path},
		{ID: "big", URL: path, Scale: 2},
		{ID: "bad", URL: path, Scale: -3},
	}

	items, err := NewLoader().LoadItems(entries)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, float32(1), items[0].BaseScale)
	assert.Equal(t, float32(2), items[1].BaseScale)
	assert.Equal(t, float32(1), items[2].BaseScale)

	// the hint scales the node, never the normalization beneath it
	wantOffset, wantScale := items[0].Node.ModelTransform()
	for _, it := range items[1:] {
		offset, scale := it.Node.ModelTransform()
		assert.Equal(t, wantScale, scale, it.Meta.ID)
		assertVec3(t, wantOffset, offset)
	}
}

func TestLoadItemsAllFail(t *testing.T) {
	l := NewLoader()
	_, err := l.LoadItems([]CatalogEntry{{ID: "x", URL: filepath.Join(t.TempDir(), "x.glb")}})
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestLoadModelUsesCache(t *testing.T) {
	cached := ModelInfo{Path: "virtual.glb", Scale: 2}
	l := NewLoader(WithModel("virtual.glb", cached), WithTargetSize(2.8))

	info, err := l.LoadModel("virtual.glb")
	require.NoError(t, err)
	assert.Equal(t, cached, info)

	path := writeFile(t, t.TempDir(), "box.glb", buildGLB(t, tallBox, true))
	info, err = l.LoadModel(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, info.Scale, 1e-5)
}
