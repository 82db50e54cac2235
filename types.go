package trainload

import (
	"fmt"
	"strings"
	"time"
)

// FormStatus is the discrete form label derived from TSB.
type FormStatus string

const (
	FormRaceReady   FormStatus = "race_ready"
	FormFresh       FormStatus = "fresh"
	FormOptimal     FormStatus = "optimal"
	FormTired       FormStatus = "tired"
	FormOvertrained FormStatus = "overtrained"
)

// TrendDirection labels the TSB movement over a window.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// FatigueLevel buckets acute load into recovery guidance bands.
type FatigueLevel string

const (
	FatigueLow      FatigueLevel = "low"
	FatigueModerate FatigueLevel = "moderate"
	FatigueHigh     FatigueLevel = "high"
	FatigueVeryHigh FatigueLevel = "very_high"
)

// Confidence rates how much a projection can be trusted.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// RiskLevel is the overall verdict of a validation.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Severity grades a single warning.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// WorkoutIntensity is a totally ordered workout intensity level.
type WorkoutIntensity int

const (
	IntensityRecovery WorkoutIntensity = iota
	IntensityEasy
	IntensityModerate
	IntensityTempo
	IntensityThreshold
	IntensityVO2Max
	IntensitySprint
)

var intensityNames = map[WorkoutIntensity]string{
	IntensityRecovery:  "recovery",
	IntensityEasy:      "easy",
	IntensityModerate:  "moderate",
	IntensityTempo:     "tempo",
	IntensityThreshold: "threshold",
	IntensityVO2Max:    "vo2max",
	IntensitySprint:    "sprint",
}

func (i WorkoutIntensity) String() string {
	if name, ok := intensityNames[i]; ok {
		return name
	}
	return fmt.Sprintf("intensity(%d)", int(i))
}

// MarshalText renders the canonical lowercase name.
func (i WorkoutIntensity) MarshalText() ([]byte, error) {
	name, ok := intensityNames[i]
	if !ok {
		return nil, fmt.Errorf("unknown workout intensity %d", int(i))
	}
	return []byte(name), nil
}

// UnmarshalText parses strictly; unknown names are rejected at the boundary.
func (i *WorkoutIntensity) UnmarshalText(data []byte) error {
	parsed, err := ParseIntensity(string(data))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// ParseIntensity maps an intensity name to its level, rejecting unknown names.
func ParseIntensity(s string) (WorkoutIntensity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for level, n := range intensityNames {
		if n == name {
			return level, nil
		}
	}
	return IntensityModerate, fmt.Errorf("unknown workout intensity %q", s)
}

// IntensityOrModerate parses leniently, defaulting unrecognized names to
// moderate. Ingestion boundaries use this; the calculators never do.
func IntensityOrModerate(s string) WorkoutIntensity {
	level, err := ParseIntensity(s)
	if err != nil {
		return IntensityModerate
	}
	return level
}

// FitnessDataPoint is one day of the CTL/ATL/TSB series. Points for a single
// athlete are ordered by date ascending, at most one per calendar date.
type FitnessDataPoint struct {
	Date     time.Time `json:"date"`
	CTL      float64   `json:"ctl"`
	ATL      float64   `json:"atl"`
	TSB      float64   `json:"tsb"`
	RampRate *float64  `json:"ramp_rate,omitempty"`
}

// ActivityRecord is one recorded activity with its load contribution.
type ActivityRecord struct {
	Date            time.Time `json:"date"`
	DurationMinutes float64   `json:"duration_minutes"`
	TSS             float64   `json:"tss"`
	Type            string    `json:"type"`
}

// FitnessMetrics is the latest snapshot of the load series.
type FitnessMetrics struct {
	CTL      float64 `json:"ctl"`
	ATL      float64 `json:"atl"`
	TSB      float64 `json:"tsb"`
	RampRate float64 `json:"ramp_rate"`
}

// TrainingHistory bundles the recent activity window with the latest metrics.
type TrainingHistory struct {
	Activities     []ActivityRecord `json:"activities"`
	FitnessMetrics FitnessMetrics   `json:"fitness_metrics"`
}

// ProposedWorkout describes a workout under consideration.
type ProposedWorkout struct {
	Sport           string           `json:"sport"`
	DurationMinutes float64          `json:"duration_minutes"`
	Intensity       WorkoutIntensity `json:"intensity"`
	EstimatedTSS    *float64         `json:"estimated_tss,omitempty"`
}

// FormTrend summarizes CTL/ATL/TSB movement over a recent window.
type FormTrend struct {
	Direction  TrendDirection `json:"direction"`
	TSBChange  float64        `json:"tsb_change"`
	CTLChange  float64        `json:"ctl_change"`
	ATLChange  float64        `json:"atl_change"`
	CurrentTSB float64        `json:"current_tsb"`
	AverageTSB float64        `json:"average_tsb"`
}

// WeeklyLoadSummary aggregates one Monday-start calendar week of activities.
type WeeklyLoadSummary struct {
	WeekStart             time.Time `json:"week_start"`
	TotalTSS              float64   `json:"total_tss"`
	ActivityCount         int       `json:"activity_count"`
	AverageTSSPerActivity float64   `json:"average_tss_per_activity"`
	TotalDuration         float64   `json:"total_duration"`
}

// RecoveryAssessment classifies fatigue and overreaching risk.
type RecoveryAssessment struct {
	FatigueLevel          FatigueLevel `json:"fatigue_level"`
	SuggestedRecoveryDays int          `json:"suggested_recovery_days"`
	RampRate              float64      `json:"ramp_rate"`
	IsOverreaching        bool         `json:"is_overreaching"`
}

// RaceReadiness projects current trend forward to a race date.
type RaceReadiness struct {
	DaysUntilRace  int        `json:"days_until_race"`
	ProjectedTSB   float64    `json:"projected_tsb"`
	CurrentForm    FormStatus `json:"current_form"`
	Recommendation string     `json:"recommendation"`
	Confidence     Confidence `json:"confidence"`
}

// LoadMetrics is the derived load state the validators reason over.
type LoadMetrics struct {
	WeeklyTSS float64  `json:"weekly_tss"`
	CTL       float64  `json:"ctl"`
	ATL       float64  `json:"atl"`
	TSB       float64  `json:"tsb"`
	RampRate  float64  `json:"ramp_rate"`
	Monotony  *float64 `json:"monotony,omitempty"`
	Strain    *float64 `json:"strain,omitempty"`
}

// LoadWarningType identifies which training-load rule fired.
type LoadWarningType string

const (
	WarnRampRate        LoadWarningType = "ramp_rate"
	WarnConsecutiveHard LoadWarningType = "consecutive_hard"
	WarnMonotony        LoadWarningType = "monotony"
	WarnStrain          LoadWarningType = "strain"
	WarnOverreaching    LoadWarningType = "overreaching"
)

// LoadWarning is one fired training-load rule.
type LoadWarning struct {
	Type      LoadWarningType `json:"type"`
	Severity  Severity        `json:"severity"`
	Message   string          `json:"message"`
	Threshold *float64        `json:"threshold,omitempty"`
	Actual    *float64        `json:"actual,omitempty"`
}

// TrainingLoadValidation is the overtraining-risk verdict for a proposed workout.
type TrainingLoadValidation struct {
	IsValid         bool          `json:"is_valid"`
	Risk            RiskLevel     `json:"risk"`
	CurrentLoad     LoadMetrics   `json:"current_load"`
	ProjectedLoad   *LoadMetrics  `json:"projected_load,omitempty"`
	Warnings        []LoadWarning `json:"warnings"`
	Recommendations []string      `json:"recommendations"`
}

// ModificationWarningType identifies which workout-modification rule fired.
type ModificationWarningType string

const (
	WarnIntensityJump       ModificationWarningType = "intensity_jump"
	WarnLoadIncrease        ModificationWarningType = "load_increase"
	WarnDurationIncrease    ModificationWarningType = "duration_increase"
	WarnConstraintViolation ModificationWarningType = "constraint_violation"
	WarnFatigueRisk         ModificationWarningType = "fatigue_risk"
	WarnConsecutiveHardDays ModificationWarningType = "consecutive_hard_days"
)

// ModificationWarning is one fired workout-modification rule.
type ModificationWarning struct {
	Type      ModificationWarningType `json:"type"`
	Severity  Severity                `json:"severity"`
	Message   string                  `json:"message"`
	Threshold *float64                `json:"threshold,omitempty"`
	Actual    *float64                `json:"actual,omitempty"`
}

// WorkoutModificationValidation is the verdict on a user-edited workout.
type WorkoutModificationValidation struct {
	IsValid               bool                  `json:"is_valid"`
	Risk                  RiskLevel             `json:"risk"`
	Warnings              []ModificationWarning `json:"warnings"`
	Recommendations       []string              `json:"recommendations"`
	SuggestedModification *ProposedWorkout      `json:"suggested_modification,omitempty"`
}

// ReadinessSignal is the same-day wellness readiness light. Consumed, never
// computed, by this engine.
type ReadinessSignal string

const (
	ReadinessGreen  ReadinessSignal = "green"
	ReadinessYellow ReadinessSignal = "yellow"
	ReadinessRed    ReadinessSignal = "red"
)

// FatigueState is the caller-supplied fatigue summary for modification checks.
type FatigueState string

const (
	FatigueStateLow      FatigueState = "low"
	FatigueStateModerate FatigueState = "moderate"
	FatigueStateHigh     FatigueState = "high"
	FatigueStateCritical FatigueState = "critical"
)

// ConstraintKind tags the constraint variant.
type ConstraintKind string

const (
	ConstraintInjury       ConstraintKind = "injury"
	ConstraintTravel       ConstraintKind = "travel"
	ConstraintAvailability ConstraintKind = "availability"
)

// InjurySeverity grades an injury constraint.
type InjurySeverity string

const (
	InjuryMild     InjurySeverity = "mild"
	InjuryModerate InjurySeverity = "moderate"
	InjurySevere   InjurySeverity = "severe"
)

// RestrictionHighIntensity is the generic restriction token that bars any
// workout at or above threshold intensity regardless of sport.
const RestrictionHighIntensity = "high_intensity"

// InjuryConstraint restricts sports (or all high-intensity work) while active.
type InjuryConstraint struct {
	BodyPart         string         `json:"body_part,omitempty"`
	Severity         InjurySeverity `json:"severity"`
	RestrictedSports []string       `json:"restricted_sports"`
}

// TravelConstraint limits equipment or venue access while traveling.
type TravelConstraint struct {
	Location         string   `json:"location,omitempty"`
	AvailableSports  []string `json:"available_sports,omitempty"`
	MaxDailyMinutes  float64  `json:"max_daily_minutes,omitempty"`
	EquipmentMissing []string `json:"equipment_missing,omitempty"`
}

// AvailabilityConstraint caps training time on given weekdays.
type AvailabilityConstraint struct {
	Weekdays        []time.Weekday `json:"weekdays,omitempty"`
	MaxDailyMinutes float64        `json:"max_daily_minutes,omitempty"`
}

// Constraint is a tagged variant; exactly one payload matches Kind. Callers
// supply only constraints that are currently active.
type Constraint struct {
	Kind         ConstraintKind          `json:"kind"`
	Injury       *InjuryConstraint       `json:"injury,omitempty"`
	Travel       *TravelConstraint       `json:"travel,omitempty"`
	Availability *AvailabilityConstraint `json:"availability,omitempty"`
}

// CompletedActivity is a recent prior workout supplied for the
// consecutive-hard-days check.
type CompletedActivity struct {
	Date      time.Time        `json:"date"`
	Sport     string           `json:"sport"`
	Intensity WorkoutIntensity `json:"intensity"`
}

// ModificationContext is the optional athlete state for ValidateModification.
type ModificationContext struct {
	Readiness        ReadinessSignal     `json:"readiness,omitempty"`
	Fatigue          FatigueState        `json:"fatigue,omitempty"`
	Constraints      []Constraint        `json:"constraints,omitempty"`
	RecentActivities []CompletedActivity `json:"recent_activities,omitempty"`
}
