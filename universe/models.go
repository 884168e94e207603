package universe

// Body holds the physical attributes shared by every celestial object.
// Age is in billions of years; mass and radius are in units chosen by the
// generation config; X/Y are integer simulation-space coordinates.
type Body struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Age    float64 `json:"age"`
	Mass   float64 `json:"mass"`
	Radius float64 `json:"radius"`
	X      int     `json:"x_coord"`
	Y      int     `json:"y_coord"`
	Color  string  `json:"color"`
}

// Galaxy is the root of the generated hierarchy. Seed is the root seed the
// galaxy was generated from and is fixed at creation.
type Galaxy struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Type              GalaxyType    `json:"type"`
	Age               float64       `json:"age"`
	Brightness        float64       `json:"brightness"`
	BlackHolePresence bool          `json:"black_hole_presence"`
	Seed              uint64        `json:"seed"`
	Systems           []SolarSystem `json:"systems"`
}

// SolarSystem contains exactly one star and zero or more planets. Seed is
// the expanded seed the system was generated from, kept so a single system
// can be rebuilt without its siblings.
type SolarSystem struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	X       int      `json:"x_coord"`
	Y       int      `json:"y_coord"`
	Seed    uint64   `json:"seed"`
	Age     float64  `json:"age"`
	Star    Star     `json:"star"`
	Planets []Planet `json:"planets"`
}

type Star struct {
	Body
	Type        StarType        `json:"type"`
	Stage       StarStage       `json:"stage"`
	Composition StarComposition `json:"composition"`
	Luminosity  float64         `json:"luminosity"`
	Temperature int             `json:"temperature"`
	FlareActive bool            `json:"flare_active"`
}

type Planet struct {
	Body
	Type             PlanetType        `json:"type"`
	Composition      PlanetComposition `json:"composition"`
	Atmosphere       AtmosphereType    `json:"atmosphere"`
	DistanceFromStar float64           `json:"distance_from_star"`
	IsHabitable      bool              `json:"is_habitable"`
	HasRings         bool              `json:"has_rings"`
	Satellites       []Satellite       `json:"satellites"`
}

// Satellite refers to its owning planet by ID rather than by pointer, so
// the entity graph stays acyclic and serializable.
type Satellite struct {
	Body
	Type               SatelliteType        `json:"type"`
	Composition        SatelliteComposition `json:"composition"`
	PlanetID           string               `json:"planet_id"`
	DistanceFromPlanet float64              `json:"distance_from_planet"`
}

// Celestial is implemented by every object carrying a physical Body,
// allowing uniform traversal of a generated graph.
type Celestial interface {
	Physical() *Body
	Level() Level
}

func (s *Star) Physical() *Body      { return &s.Body }
func (s *Star) Level() Level         { return LevelStar }
func (p *Planet) Physical() *Body    { return &p.Body }
func (p *Planet) Level() Level       { return LevelPlanet }
func (s *Satellite) Physical() *Body { return &s.Body }
func (s *Satellite) Level() Level    { return LevelSatellite }
