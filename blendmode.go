package sdl3

// BlendMode controls how drawn colors combine with the destination.
// Values match the native blend mode bits.
type BlendMode uint32

const (
	BlendModeNone               BlendMode = 0x00000000
	BlendModeBlend              BlendMode = 0x00000001
	BlendModeAdd                BlendMode = 0x00000002
	BlendModeMod                BlendMode = 0x00000004
	BlendModeMul                BlendMode = 0x00000008
	BlendModeBlendPremultiplied BlendMode = 0x00000010
	BlendModeAddPremultiplied   BlendMode = 0x00000020
	BlendModeInvalid            BlendMode = 0x7fffffff
)

var knownBlendModes = map[BlendMode]struct{}{
	BlendModeNone:               {},
	BlendModeBlend:              {},
	BlendModeAdd:                {},
	BlendModeMod:                {},
	BlendModeMul:                {},
	BlendModeBlendPremultiplied: {},
	BlendModeAddPremultiplied:   {},
}

// BlendModeFromUint32 validates a raw native blend mode. Composed
// custom modes are not representable here and report an unknown value.
func BlendModeFromUint32(v uint32) (BlendMode, error) {
	m := BlendMode(v)
	if _, ok := knownBlendModes[m]; !ok {
		return BlendModeInvalid, &UnknownEnumError{Kind: "blend mode", Value: uint64(v)}
	}
	return m, nil
}

// BlendFactor scales a blend equation term.
type BlendFactor uint32

const (
	BlendFactorZero BlendFactor = iota + 1
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// BlendOperation combines the two scaled terms.
type BlendOperation uint32

const (
	BlendOperationAdd BlendOperation = iota + 1
	BlendOperationSubtract
	BlendOperationRevSubtract
	BlendOperationMinimum
	BlendOperationMaximum
)

// ComposeCustomBlendMode builds a custom blend mode from per-channel
// factors and operations. The result can be handed to any SetBlendMode
// but is not one of the named BlendMode constants.
func (s *SDL) ComposeCustomBlendMode(srcColor, dstColor BlendFactor, colorOp BlendOperation, srcAlpha, dstAlpha BlendFactor, alphaOp BlendOperation) (BlendMode, error) {
	if err := s.alive(); err != nil {
		return BlendModeInvalid, err
	}
	mode := s.api.ComposeCustomBlendMode(
		uint32(srcColor), uint32(dstColor), uint32(colorOp),
		uint32(srcAlpha), uint32(dstAlpha), uint32(alphaOp),
	)
	if BlendMode(mode) == BlendModeInvalid {
		return BlendModeInvalid, lastError(s.api, "ComposeCustomBlendMode")
	}
	return BlendMode(mode), nil
}
