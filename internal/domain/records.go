package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record types all follow the same lifecycle: created against a farm,
// updatable in place, and soft-deleted by flag. Deleted rows stay in the
// database but are excluded from delete lookups and report aggregations.
//
// JSON tags follow the mobile client's field naming.

// ScoutingRecord captures a field inspection: crop condition, observed
// symptoms and any pesticide response.
type ScoutingRecord struct {
	ID              uuid.UUID `json:"scoutingID"`
	FarmID          uuid.UUID `json:"farmID"`
	Block           string    `json:"block"`
	Bed             string    `json:"bed"`
	CropType        string    `json:"cropType"`
	CropStatus      string    `json:"cropStatus"`
	Symptoms        string    `json:"symptoms"`
	Damage          string    `json:"damage"`
	PestType        string    `json:"pestType"`
	PesticideUsed   string    `json:"pesticideUsed"`
	Amount          float64   `json:"amount"`
	WaterUsed       float64   `json:"waterUsed"`
	ApplicationMode string    `json:"applicationMode"`
	Deleted         bool      `json:"-"`
	CreatedAt       time.Time `json:"-"`
}

// IrrigationRecord captures one watering run on a block.
type IrrigationRecord struct {
	ID                uuid.UUID `json:"irrigationID"`
	FarmID            uuid.UUID `json:"farmID"`
	PumpDischargeRate float64   `json:"pumpDischargeRate"`
	Block             string    `json:"block"`
	Year              int       `json:"year"`
	CropType          string    `json:"cropType"`
	Variety           string    `json:"variety"`
	PumpStartTime     string    `json:"pumpStartTime"`
	TotalTimeTaken    string    `json:"totalTimeTaken"`
	AmountOfWaterUsed float64   `json:"amountOfWaterUsed"`
	Deleted           bool      `json:"-"`
	CreatedAt         time.Time `json:"-"`
}

// PlantingRecord captures what went into the ground and when it should come
// out.
type PlantingRecord struct {
	ID                         uuid.UUID `json:"plantingID"`
	FarmID                     uuid.UUID `json:"farmID"`
	Location                   string    `json:"location"`
	Block                      string    `json:"block"`
	Bed                        string    `json:"bed"`
	CropType                   string    `json:"cropType"`
	Variety                    string    `json:"variety"`
	PlantingMethod             string    `json:"plantingMethod"`
	RootStockTreatmentChemical string    `json:"rootStockTreatmentChemical,omitempty"`
	PlantingRate               string    `json:"plantingRate"`
	QuantityPlanted            int       `json:"quantityPlanted"`
	PlantingDate               Date      `json:"plantingDate"`
	ExpectedHarvestDate        Date      `json:"expectedHarvestDate"`
	Deleted                    bool      `json:"-"`
	CreatedAt                  time.Time `json:"-"`
}

// HarvestRecord captures picked, packed and rejected quantities per harvest.
type HarvestRecord struct {
	ID                uuid.UUID `json:"harvestID"`
	FarmID            uuid.UUID `json:"farmID"`
	HarvestNumber     string    `json:"harvestNumber"`
	PlantingDate      Date      `json:"plantingDate"`
	Block             string    `json:"block"`
	Variety           string    `json:"variety"`
	QuantityHarvested float64   `json:"quantityHarvested"`
	QuantityPacked    float64   `json:"quantityPacked"`
	QuantityRejected  float64   `json:"quantityRejected"`
	Loss              float64   `json:"loss"`
	Deleted           bool      `json:"-"`
	CreatedAt         time.Time `json:"-"`
}

// FertilizerRecord captures one fertilizer application on a block.
type FertilizerRecord struct {
	ID                uuid.UUID `json:"fertilizerID"`
	FarmID            uuid.UUID `json:"farmID"`
	ProductionNumber  string    `json:"productionNumber"`
	DateOfApplication Date      `json:"dateOfApplication"`
	Block             string    `json:"block"`
	Crop              string    `json:"crop"`
	Variety           string    `json:"variety"`
	NPKComposition    string    `json:"NPKComposition"`
	RatePerHA         float64   `json:"ratePerHA"`
	QuantityApplied   float64   `json:"quantityApplied"`
	ModeOfApplication string    `json:"modeOfApplication"`
	MachineryUsed     string    `json:"machineryUsed,omitempty"`
	OperatorName      string    `json:"operatorName"`
	Deleted           bool      `json:"-"`
	CreatedAt         time.Time `json:"-"`
}

// ColdRoomRecord captures the four daily temperature checks of a cold room.
type ColdRoomRecord struct {
	ID            uuid.UUID `json:"coldRoomRecordID"`
	FarmID        uuid.UUID `json:"farmID"`
	ColdRoomID    string    `json:"coldRoomId"`
	Date          Date      `json:"date"`
	MorningTemp   float64   `json:"morningTemp"`
	AfternoonTemp float64   `json:"afternoonTemp"`
	EveningTemp   float64   `json:"eveningTemp"`
	NightTemp     float64   `json:"nightTemp"`
	Comments      string    `json:"comments,omitempty"`
	ActionTaken   string    `json:"actionTaken,omitempty"`
	Deleted       bool      `json:"-"`
	CreatedAt     time.Time `json:"-"`
}

// EmployeeRecord is a staff member attached to a farm.
type EmployeeRecord struct {
	ID         uuid.UUID `json:"employeeID"`
	FarmID     uuid.UUID `json:"farmID"`
	FullName   string    `json:"fullName"`
	JobTitle   string    `json:"jobTitle"`
	Department string    `json:"department"`
	Contact    string    `json:"contact"`
	Email      string    `json:"email"`
	Location   string    `json:"location,omitempty"`
	StartDate  Date      `json:"startDate,omitempty"`
	Deleted    bool      `json:"-"`
	CreatedAt  time.Time `json:"-"`
}

// TrainingRecord captures a staff training session.
type TrainingRecord struct {
	ID                uuid.UUID `json:"trainingID"`
	FarmID            uuid.UUID `json:"farmID"`
	TrainingTitle     string    `json:"trainingTitle"`
	TrainerName       string    `json:"trainerName"`
	Date              Date      `json:"date"`
	FarmName          string    `json:"farmName"`
	Topic             string    `json:"topic"`
	Duration          string    `json:"duration"`
	Summary           string    `json:"summary"`
	MaterialsProvided []string  `json:"materialsProvided"`
	Attendance        int       `json:"attendance"`
	TrainerNotes      string    `json:"trainerNotes,omitempty"`
	Deleted           bool      `json:"-"`
	CreatedAt         time.Time `json:"-"`
}

// AccidentRecord captures a safety inspection or incident.
type AccidentRecord struct {
	ID            uuid.UUID `json:"safetyID"`
	FarmID        uuid.UUID `json:"farmID"`
	SafetyType    string    `json:"safetyType"`
	InspectorName string    `json:"inspectorName"`
	Date          Date      `json:"date"`
	IncidentType  string    `json:"incidentType"`
	Status        string    `json:"status"`
	Deleted       bool      `json:"-"`
	CreatedAt     time.Time `json:"-"`
}
