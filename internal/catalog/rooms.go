package catalog

// RoomType distinguishes the two selectable environments.
type RoomType string

const (
	RoomHouse RoomType = "house"
	RoomWork  RoomType = "work"
)

func (t RoomType) IsValid() bool {
	return t == RoomHouse || t == RoomWork
}

// House modifies the Relax cooldown action.
type House struct {
	ID          string
	Name        string
	Price       int
	RelaxExtra  int
	HealthBonus int
}

// WorkRoom modifies the Work Bonus cooldown action.
type WorkRoom struct {
	ID              string
	Name            string
	Price           int
	WorkCoinsExtra  int
	WorkHealthExtra int
}

const (
	DefaultHouseID    = "house_studio"
	DefaultWorkRoomID = "work_corner"
)

var houses = []House{
	{ID: DefaultHouseID, Name: "Studio", Price: 0},
	{ID: "house_loft", Name: "Loft", Price: 400, RelaxExtra: 5, HealthBonus: 2},
	{ID: "house_villa", Name: "Villa", Price: 900, RelaxExtra: 10, HealthBonus: 4},
}

var workRooms = []WorkRoom{
	{ID: DefaultWorkRoomID, Name: "Corner Desk", Price: 0},
	{ID: "work_office", Name: "Office", Price: 350, WorkCoinsExtra: 20, WorkHealthExtra: 3},
	{ID: "work_atelier", Name: "Atelier", Price: 700, WorkCoinsExtra: 45, WorkHealthExtra: 6},
}

var (
	houseIndex    = map[string]House{}
	workRoomIndex = map[string]WorkRoom{}
)

func init() {
	for _, h := range houses {
		houseIndex[h.ID] = h
	}
	for _, w := range workRooms {
		workRoomIndex[w.ID] = w
	}
}

func HouseByID(id string) (House, bool) {
	h, ok := houseIndex[id]
	return h, ok
}

func WorkRoomByID(id string) (WorkRoom, bool) {
	w, ok := workRoomIndex[id]
	return w, ok
}

func Houses() []House       { return houses }
func WorkRooms() []WorkRoom { return workRooms }
