package domain

import (
	"time"

	"github.com/google/uuid"
)

// Farm is an operational unit owned by a farmer. Records always hang off a
// farm, never off an account directly.
type Farm struct {
	ID                    uuid.UUID
	OwnerID               uuid.UUID
	TotalFarmArea         float64
	NumberOfBlocks        int
	MainCropsGrown        string
	FarmingMethods        string
	SoilType              string
	IrrigationSystem      string
	AverageAnnualRainfall float64
	MajorChallengesFaced  string
	FarmEquipmentOwned    string
	Latitude              float64
	Longitude             float64
	CreatedAt             time.Time
}
