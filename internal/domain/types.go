package domain

import "time"

type Ship struct {
	ID   string
	Name string
}

type Motor struct {
	ID        string
	ShipID    string
	ShipName  string
	Name      string
	PowerKW   float64
	RPM       int
	Notes     string
	CreatedAt time.Time
}

// Step is one entry of the global maintenance checklist. The catalog is
// immutable at runtime and totally ordered by Order.
type Step struct {
	ID            int64
	Order         int
	Name          string
	IsMandatory   bool
	RequiresPhoto bool
}

// Completion is the per-(motor, step) record. A row may exist with
// Completed == false when a photo was attached before the step was finished.
// The Completed flag is one-way: it never transitions back to false.
type Completion struct {
	ID           int64
	MotorID      string
	StepID       int64
	Completed    bool
	CompletedAt  *time.Time
	TechnicianID *string
}

type Photo struct {
	ID           int64
	CompletionID int64
	ImageURL     string
	UploadedAt   time.Time
}

type Technician struct {
	ID           string
	Name         string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

type AuditEntry struct {
	ID           int64
	MotorID      string
	StepID       int64
	TechnicianID string
	Action       string
	CreatedAt    time.Time
}

// StepState classifies a checklist step for one motor.
type StepState int

const (
	// StateNotStarted means no completion row exists for the step.
	StateNotStarted StepState = iota
	// StateInProgress means a row exists (usually via photo attachment)
	// but the step is not completed.
	StateInProgress
	// StateCompleted means the step was completed.
	StateCompleted
)

func (s StepState) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	default:
		return "not_started"
	}
}

// StepStatus joins one catalog step with its completion state for a motor.
type StepStatus struct {
	Step       Step
	State      StepState
	Completion *Completion
	Photos     []*Photo
}

// MotorProgress is the resolver's view of a motor's checklist. CurrentIndex
// is the count of completed records; it equals len(Steps) when every step
// is done.
type MotorProgress struct {
	Motor        *Motor
	Steps        []*StepStatus
	CurrentIndex int
}

// Done reports whether every checklist step is completed.
func (p *MotorProgress) Done() bool {
	return p.CurrentIndex >= len(p.Steps)
}

// CurrentStep returns the next actionable step, or nil when the checklist
// is finished.
func (p *MotorProgress) CurrentStep() *StepStatus {
	if p.Done() {
		return nil
	}
	return p.Steps[p.CurrentIndex]
}

// ReportStep is one completed checklist entry in a report, in catalog order.
type ReportStep struct {
	StepOrder      int
	StepName       string
	CompletedAt    time.Time
	TechnicianName string
	PhotoURLs      []string
}

// Report is the content model consumed by a downstream document renderer.
// Only completed steps appear; pending steps are omitted entirely.
type Report struct {
	MotorID     string
	MotorName   string
	ShipName    string
	PowerKW     float64
	RPM         int
	Notes       string
	GeneratedAt time.Time
	Steps       []*ReportStep
}
