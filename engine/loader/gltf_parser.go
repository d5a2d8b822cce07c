package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-carousel/common"
)

// Common errors returned by the parser
var (
	errInvalidGLTFVersion = errors.New("invalid glTF version: must be 2.0")
	errInvalidGLBMagic    = errors.New("invalid GLB magic number")
	errInvalidGLBVersion  = errors.New("invalid GLB version: must be 2")
	errMissingJSONChunk   = errors.New("GLB file missing JSON chunk")
	errInvalidBufferURI   = errors.New("invalid buffer URI")
	errBufferSizeMismatch = errors.New("buffer size mismatch")
	errNoPositions        = errors.New("model has no POSITION data")
)

// gltfParserImpl is the implementation of the gltfParser interface.
type gltfParserImpl struct {
	baseDir        string
	document       *gltfDocument
	glbBinaryChunk []byte
}

// gltfParser reads glTF/GLB files far enough to measure their geometry.
// This is internal to the loader package.
type gltfParser interface {
	// Parse loads and parses a glTF/GLB file from the given path.
	// Automatically detects .gltf (JSON) vs .glb (binary) format.
	//
	// Parameters:
	//   - path: path to the glTF or GLB file
	//
	// Returns:
	//   - error: error if parsing fails
	Parse(path string) error

	// ParseReader parses a glTF document from a reader.
	//
	// Parameters:
	//   - r: reader containing glTF JSON or GLB data
	//   - isGLB: true if the data is in GLB format
	//
	// Returns:
	//   - error: error if parsing fails
	ParseReader(r io.Reader, isGLB bool) error

	// Document returns the parsed glTF document, or nil before a successful Parse.
	Document() *gltfDocument

	// Bounds unions the bounds of every POSITION accessor across all mesh primitives.
	// Accessor min/max are used when present; otherwise the vertex data is scanned.
	//
	// Returns:
	//   - Bounds: the model-space box
	//   - error: errNoPositions if no primitive carries positions
	Bounds() (Bounds, error)
}

var _ gltfParser = &gltfParserImpl{}

func newGLTFParser() gltfParser {
	return &gltfParserImpl{}
}

func (p *gltfParserImpl) Document() *gltfDocument {
	return p.document
}

func (p *gltfParserImpl) Parse(path string) error {
	p.baseDir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".glb" || (len(data) >= 4 && binary.LittleEndian.Uint32(data[:4]) == gltfGLBMagic) {
		return p.parseGLB(data)
	}

	return p.parseGLTF(data)
}

func (p *gltfParserImpl) ParseReader(r io.Reader, isGLB bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read data: %w", err)
	}

	if isGLB {
		return p.parseGLB(data)
	}
	return p.parseGLTF(data)
}

func (p *gltfParserImpl) parseGLTF(data []byte) error {
	return p.decodeDocument(data)
}

// parseGLB splits a GLB container into its JSON and BIN chunks.
func (p *gltfParserImpl) parseGLB(data []byte) error {
	if len(data) < 12 {
		return errors.New("GLB file too small")
	}

	r := bytes.NewReader(data)

	var header gltfGLBHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to read GLB header: %w", err)
	}

	if header.Magic != gltfGLBMagic {
		return errInvalidGLBMagic
	}
	if header.Version != gltfGLBVersion {
		return errInvalidGLBVersion
	}

	var jsonData []byte
	for {
		var chunkHeader gltfGLBChunkHeader
		if err := binary.Read(r, binary.LittleEndian, &chunkHeader); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read chunk header: %w", err)
		}

		chunkData := make([]byte, chunkHeader.ChunkLength)
		if _, err := io.ReadFull(r, chunkData); err != nil {
			return fmt.Errorf("failed to read chunk data: %w", err)
		}

		switch chunkHeader.ChunkType {
		case gltfGLBChunkJSON:
			jsonData = chunkData
		case gltfGLBChunkBIN:
			p.glbBinaryChunk = chunkData
		}
	}

	if jsonData == nil {
		return errMissingJSONChunk
	}
	return p.decodeDocument(jsonData)
}

func (p *gltfParserImpl) decodeDocument(data []byte) error {
	var doc gltfDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse glTF JSON: %w", err)
	}

	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return errInvalidGLTFVersion
	}

	if err := p.loadBuffers(&doc); err != nil {
		return fmt.Errorf("failed to load buffers: %w", err)
	}

	p.document = &doc
	return nil
}

// loadBuffers resolves buffer data from URIs, embedded data, or the GLB binary chunk.
func (p *gltfParserImpl) loadBuffers(doc *gltfDocument) error {
	for i := range doc.Buffers {
		buf := &doc.Buffers[i]

		if buf.URI == "" {
			if i == 0 && p.glbBinaryChunk != nil {
				buf.Data = p.glbBinaryChunk
			} else {
				return fmt.Errorf("buffer %d has no URI and no GLB binary chunk", i)
			}
		} else {
			data, err := p.loadBufferURI(buf.URI)
			if err != nil {
				return fmt.Errorf("buffer %d: %w", i, err)
			}
			buf.Data = data
		}

		if len(buf.Data) < buf.ByteLength {
			return fmt.Errorf("buffer %d: %w", i, errBufferSizeMismatch)
		}
	}
	return nil
}

func (p *gltfParserImpl) loadBufferURI(uri string) ([]byte, error) {
	if strings.HasPrefix(uri, "data:") {
		return decodeDataURI(uri)
	}

	data, err := os.ReadFile(filepath.Join(p.baseDir, uri))
	if err != nil {
		return nil, fmt.Errorf("failed to load buffer file %q: %w", uri, err)
	}
	return data, nil
}

// decodeDataURI decodes data:[<mediatype>];base64,<data>.
func decodeDataURI(uri string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, errInvalidBufferURI
	}
	if !strings.Contains(header, "base64") {
		return nil, fmt.Errorf("unsupported data URI encoding: %s", header)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return data, nil
}

func (p *gltfParserImpl) Bounds() (Bounds, error) {
	if p.document == nil {
		return Bounds{}, errors.New("no document loaded")
	}

	b := emptyBounds()
	for _, mesh := range p.document.Meshes {
		for _, prim := range mesh.Primitives {
			idx, ok := prim.Attributes[gltfAttributePosition]
			if !ok {
				continue
			}
			ab, err := p.accessorBounds(idx)
			if err != nil {
				return Bounds{}, fmt.Errorf("mesh %q: %w", mesh.Name, err)
			}
			b = b.Extend(ab)
		}
	}

	if b.Empty() {
		return Bounds{}, errNoPositions
	}
	return b, nil
}

func (p *gltfParserImpl) accessorBounds(accessorIndex int) (Bounds, error) {
	if accessorIndex < 0 || accessorIndex >= len(p.document.Accessors) {
		return Bounds{}, fmt.Errorf("accessor index %d out of range", accessorIndex)
	}

	acc := &p.document.Accessors[accessorIndex]
	if len(acc.Min) >= 3 && len(acc.Max) >= 3 {
		return Bounds{
			Min: common.Vec3{acc.Min[0], acc.Min[1], acc.Min[2]},
			Max: common.Vec3{acc.Max[0], acc.Max[1], acc.Max[2]},
		}, nil
	}

	points, err := p.readVec3Accessor(accessorIndex)
	if err != nil {
		return Bounds{}, err
	}
	b := emptyBounds()
	for _, pt := range points {
		b = b.Extend(Bounds{Min: pt, Max: pt})
	}
	return b, nil
}

// readVec3Accessor reads a VEC3 FLOAT accessor, honoring the buffer view stride.
func (p *gltfParserImpl) readVec3Accessor(accessorIndex int) ([]common.Vec3, error) {
	acc := &p.document.Accessors[accessorIndex]
	if acc.Type != gltfAccessorTypeVec3 || acc.ComponentType != gltfComponentTypeFloat {
		return nil, fmt.Errorf("accessor is not VEC3 FLOAT: type=%s, componentType=%d", acc.Type, acc.ComponentType)
	}
	if acc.BufferView == nil {
		return nil, errors.New("accessor has no bufferView")
	}
	if *acc.BufferView < 0 || *acc.BufferView >= len(p.document.BufferViews) {
		return nil, fmt.Errorf("bufferView index %d out of range", *acc.BufferView)
	}

	bv := &p.document.BufferViews[*acc.BufferView]
	if bv.Buffer < 0 || bv.Buffer >= len(p.document.Buffers) {
		return nil, fmt.Errorf("buffer index %d out of range", bv.Buffer)
	}
	buf := p.document.Buffers[bv.Buffer].Data

	const elementSize = 12
	stride := elementSize
	if bv.ByteStride != nil && *bv.ByteStride > 0 {
		stride = *bv.ByteStride
	}

	base := bv.ByteOffset + acc.ByteOffset
	result := make([]common.Vec3, acc.Count)
	for i := range result {
		off := base + i*stride
		if off+elementSize > len(buf) {
			return nil, fmt.Errorf("accessor %d: %w", accessorIndex, errBufferSizeMismatch)
		}
		if err := binary.Read(bytes.NewReader(buf[off:off+elementSize]), binary.LittleEndian, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}
