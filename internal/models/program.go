package models

// Discipline selects which program document of a player is addressed.
type Discipline string

const (
	DisciplineThrowing Discipline = "throwing"
	DisciplineLifting  Discipline = "lifting"
)

// ThrowingProgram is the full nested throwing plan for one player.
// Day/section/drill order is positional and significant; day numbers are
// display labels only and may gap or repeat after deletions.
type ThrowingProgram struct {
	Days []Day `json:"days" toml:"day"`
}

type Day struct {
	Day      int       `json:"day" toml:"day"`
	Focus    string    `json:"focus" toml:"focus"`
	Sections []Section `json:"sections" toml:"section"`
}

type Section struct {
	Title  string  `json:"title" toml:"title"`
	Drills []Drill `json:"drills" toml:"drill"`
}

type Drill struct {
	Name string `json:"name" toml:"name"`
	Sets string `json:"sets" toml:"sets"`
	Reps string `json:"reps" toml:"reps"`
	URL  string `json:"url" toml:"url"`
}

// LiftingProgram holds the workout days for one player. Days are an ordered
// sequence keyed by a synthetic id assigned at creation, so a day survives
// renames and reorders without positional aliasing.
type LiftingProgram struct {
	Days []WorkoutDay `json:"days" toml:"workout"`
}

type WorkoutDay struct {
	Key       string     `json:"key" toml:"key"`
	Name      string     `json:"name" toml:"name"`
	Exercises []Exercise `json:"exercises" toml:"exercise"`
}

type Exercise struct {
	Name     string `json:"name" toml:"name"`
	Sets     string `json:"sets" toml:"sets"`
	Reps     string `json:"reps" toml:"reps"`
	VideoURL string `json:"videoUrl" toml:"video_url"`
}

// Clone returns a deep copy. Edit operations work on copies so the canonical
// remote snapshot is never mutated in place.
func (p *ThrowingProgram) Clone() *ThrowingProgram {
	out := &ThrowingProgram{Days: make([]Day, len(p.Days))}
	for i, d := range p.Days {
		nd := d
		nd.Sections = make([]Section, len(d.Sections))
		for j, s := range d.Sections {
			ns := s
			ns.Drills = append([]Drill(nil), s.Drills...)
			if ns.Drills == nil {
				ns.Drills = []Drill{}
			}
			nd.Sections[j] = ns
		}
		out.Days[i] = nd
	}
	return out
}

func (p *LiftingProgram) Clone() *LiftingProgram {
	out := &LiftingProgram{Days: make([]WorkoutDay, len(p.Days))}
	for i, d := range p.Days {
		nd := d
		nd.Exercises = append([]Exercise(nil), d.Exercises...)
		if nd.Exercises == nil {
			nd.Exercises = []Exercise{}
		}
		out.Days[i] = nd
	}
	return out
}

// Normalize repairs missing nested sequences after decoding from a store or
// draft encoding that drops empty collections. A materialized program always
// has a well-formed shape: every day has a sections sequence, every section a
// drills sequence, possibly empty.
func (p *ThrowingProgram) Normalize() {
	if p.Days == nil {
		p.Days = []Day{}
	}
	for i := range p.Days {
		if p.Days[i].Sections == nil {
			p.Days[i].Sections = []Section{}
		}
		for j := range p.Days[i].Sections {
			if p.Days[i].Sections[j].Drills == nil {
				p.Days[i].Sections[j].Drills = []Drill{}
			}
		}
	}
}

func (p *LiftingProgram) Normalize() {
	if p.Days == nil {
		p.Days = []WorkoutDay{}
	}
	for i := range p.Days {
		if p.Days[i].Exercises == nil {
			p.Days[i].Exercises = []Exercise{}
		}
	}
}

// WorkoutByKey returns the workout day with the given synthetic key.
func (p *LiftingProgram) WorkoutByKey(key string) (WorkoutDay, bool) {
	for _, d := range p.Days {
		if d.Key == key {
			return d, true
		}
	}
	return WorkoutDay{}, false
}
