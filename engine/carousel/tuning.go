package carousel

import "time"

// GeometryTuning holds the layout constants that position slots in world space.
type GeometryTuning struct {
	MobileMaxWidth     int     `koanf:"mobile_max_width"`
	SpacingBase        float32 `koanf:"spacing_base"`
	SpacingMaxWidth    int     `koanf:"spacing_max_width"`
	SpacingMaxBoost    float32 `koanf:"spacing_max_boost"`
	OffMult            float32 `koanf:"off_mult"`
	OffZMult           float32 `koanf:"off_z_mult"`
	CenterY            float32 `koanf:"center_y"`
	LateralY           float32 `koanf:"lateral_y"`
	OffY               float32 `koanf:"off_y"`
	NearFrac           float32 `koanf:"near_frac"`
	BackFrac           float32 `koanf:"back_frac"`
	BackMin            float32 `koanf:"back_min"`
	MobileSpacingMult  float32 `koanf:"mobile_spacing_mult"`
	MobileSideMult     float32 `koanf:"mobile_side_mult"`
	MobileOffMult      float32 `koanf:"mobile_off_mult"`
	MobileOffZMult     float32 `koanf:"mobile_off_z_mult"`
	SelectScale        float32 `koanf:"select_scale"`
	OvershootScale     float32 `koanf:"overshoot_scale"`
	OtherScale         float32 `koanf:"other_scale"`
	SilhouetteOpacity  float32 `koanf:"silhouette_opacity"`
	BaseSpin           float32 `koanf:"base_spin"`
	SideSpinFactor     float32 `koanf:"side_spin_factor"`
	SpinSmoothing      float32 `koanf:"spin_smoothing"`
	OvershootPhaseFrac float32 `koanf:"overshoot_phase_frac"`
}

// TimingTuning holds transition durations for both viewport policies.
type TimingTuning struct {
	Move              time.Duration `koanf:"move"`
	Crossfade         time.Duration `koanf:"crossfade"`
	CrossfadeDelay    time.Duration `koanf:"crossfade_delay"`
	FadeOutDelay      time.Duration `koanf:"fade_out_delay"`
	KeepSilhouette    time.Duration `koanf:"keep_silhouette"`
	RealignDesktop    time.Duration `koanf:"realign_desktop"`
	MobileMoveToSide  time.Duration `koanf:"mobile_move_to_side"`
	MobileOutFade     time.Duration `koanf:"mobile_out_fade"`
	MobileInFadeDelay time.Duration `koanf:"mobile_in_fade_delay"`
	RealignMobile     time.Duration `koanf:"realign_mobile"`
	CenterRealignFrac float32       `koanf:"center_realign_frac"`
	ExitRealignFrac   float32       `koanf:"exit_realign_frac"`
	ParkedRealignFrac float32       `koanf:"parked_realign_frac"`
	MobileParkedFrac  float32       `koanf:"mobile_parked_frac"`
}

// DragTuning holds pointer-to-rotation conversion constants.
type DragTuning struct {
	YawSensitivity  float32 `koanf:"yaw_sensitivity"`
	TiltSensitivity float32 `koanf:"tilt_sensitivity"`
	TiltMax         float32 `koanf:"tilt_max"`
	ReverseYaw      bool    `koanf:"reverse_yaw"`
	ReverseTilt     bool    `koanf:"reverse_tilt"`
}

// Tuning groups every constant the carousel animates with.
type Tuning struct {
	Geometry GeometryTuning `koanf:"geometry"`
	Timing   TimingTuning   `koanf:"timing"`
	Drag     DragTuning     `koanf:"drag"`
}

// DefaultTuning returns the stock carousel feel.
//
// Returns:
//   - Tuning: the default constants
func DefaultTuning() Tuning {
	return Tuning{
		Geometry: GeometryTuning{
			MobileMaxWidth:     768,
			SpacingBase:        1.1,
			SpacingMaxWidth:    1920,
			SpacingMaxBoost:    0.5,
			OffMult:            3.8,
			OffZMult:           1.9,
			CenterY:            0,
			LateralY:           0.1,
			OffY:               0.1,
			NearFrac:           0.22,
			BackFrac:           0.25,
			BackMin:            -1.5,
			MobileSpacingMult:  3.4,
			MobileSideMult:     1.25,
			MobileOffMult:      1.6,
			MobileOffZMult:     1.2,
			SelectScale:        1.25,
			OvershootScale:     1.08,
			OtherScale:         1.1,
			SilhouetteOpacity:  0.65,
			BaseSpin:           1.5,
			SideSpinFactor:     0.6,
			SpinSmoothing:      3.0,
			OvershootPhaseFrac: 0.55,
		},
		Timing: TimingTuning{
			Move:              720 * time.Millisecond,
			Crossfade:         560 * time.Millisecond,
			CrossfadeDelay:    80 * time.Millisecond,
			FadeOutDelay:      150 * time.Millisecond,
			KeepSilhouette:    140 * time.Millisecond,
			RealignDesktop:    432 * time.Millisecond,
			MobileMoveToSide:  520 * time.Millisecond,
			MobileOutFade:     360 * time.Millisecond,
			MobileInFadeDelay: 10 * time.Millisecond,
			RealignMobile:     364 * time.Millisecond,
			CenterRealignFrac: 0.9,
			ExitRealignFrac:   0.9,
			ParkedRealignFrac: 0.6,
			MobileParkedFrac:  0.8,
		},
		Drag: DragTuning{
			YawSensitivity:  0.008,
			TiltSensitivity: 0.006,
			TiltMax:         0.35,
			ReverseYaw:      false,
			ReverseTilt:     true,
		},
	}
}

// ExitHold is how long a desktop exit keeps the item visible: fade delay, silhouette keep phase and the move.
func (t TimingTuning) ExitHold() time.Duration {
	return t.FadeOutDelay + t.KeepSilhouette + t.Move
}

func scaleDuration(d time.Duration, f float32) time.Duration {
	return time.Duration(float64(d) * float64(f))
}
