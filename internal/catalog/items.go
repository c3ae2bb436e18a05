package catalog

// Bonus is the modifier set a single equipped source contributes. Percentages
// are whole numbers (5 = +5%) applied to the base amount; flat additions sum.
type Bonus struct {
	XPPercent           float64
	CoinsPercent        float64
	StressReducePercent float64
	HealthExtra         int
}

// ItemType tags an owned entitlement in the ownership set.
type ItemType string

const (
	ItemCover      ItemType = "cover"
	ItemAvatar     ItemType = "avatar"
	ItemPet        ItemType = "pet"
	ItemGuardian   ItemType = "guardian"
	ItemConsumable ItemType = "consumable"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemCover, ItemAvatar, ItemPet, ItemGuardian, ItemConsumable:
		return true
	default:
		return false
	}
}

// Cover is a diary cover cosmetic. Covers additionally carry a small
// economic bonus applied to every credited completion.
type Cover struct {
	ID    string
	Name  string
	Price int
	Bonus Bonus
}

// Avatar is a purely visual cosmetic. Avatars with a MissionID are granted by
// that mission and are never purchasable.
type Avatar struct {
	ID        string
	Name      string
	Price     int
	MissionID string
}

type Pet struct {
	ID    string
	Name  string
	Price int
}

// GuardianItem is a mission-unlocked equippable bonus item: purchasable only
// after the unlocking mission is completed.
type GuardianItem struct {
	ID        string
	Name      string
	Price     int
	MissionID string
	Bonus     Bonus
}

// Consumable is a daily-limited inventory buff. Exactly one of the two
// percent effects is non-zero.
type Consumable struct {
	ID                   string
	Name                 string
	Price                int
	HealthRestorePercent int
	StressReducePercent  int
}

// MaxConsumableStock is the per-item ownership cap.
const MaxConsumableStock = 2

const (
	DefaultCoverID  = "cover_classic"
	DefaultAvatarID = "avatar_explorer"
)

var covers = []Cover{
	{ID: DefaultCoverID, Name: "Classic", Price: 0},
	{ID: "cover_linen", Name: "Linen", Price: 150, Bonus: Bonus{CoinsPercent: 3}},
	{ID: "cover_galaxy", Name: "Galaxy", Price: 300, Bonus: Bonus{XPPercent: 5}},
	{ID: "cover_gilded", Name: "Gilded", Price: 500, Bonus: Bonus{CoinsPercent: 5, XPPercent: 3}},
}

var avatars = []Avatar{
	{ID: DefaultAvatarID, Name: "Explorer", Price: 0},
	{ID: "avatar_scholar", Name: "Scholar", Price: 120},
	{ID: "avatar_artist", Name: "Artist", Price: 120},
	{ID: "avatar_guardian", Name: "Guardian", MissionID: "completionist"},
}

var pets = []Pet{
	{ID: "pet_cat", Name: "Cat", Price: 180},
	{ID: "pet_dog", Name: "Dog", Price: 180},
	{ID: "pet_owl", Name: "Owl", Price: 260},
}

var guardians = []GuardianItem{
	{ID: "guardian_lantern", Name: "Lantern of Calm", Price: 250, MissionID: "streak_7", Bonus: Bonus{XPPercent: 4, StressReducePercent: 5}},
	{ID: "guardian_compass", Name: "Compass of Fortune", Price: 350, MissionID: "weekly_10", Bonus: Bonus{CoinsPercent: 6, HealthExtra: 2}},
}

var consumables = []Consumable{
	{ID: "tea_calming", Name: "Calming Tea", Price: 60, StressReducePercent: 25},
	{ID: "soup_hearty", Name: "Hearty Soup", Price: 50, HealthRestorePercent: 15},
	{ID: "tonic_vitality", Name: "Vitality Tonic", Price: 80, HealthRestorePercent: 30},
}

var (
	coverIndex      = map[string]Cover{}
	avatarIndex     = map[string]Avatar{}
	petIndex        = map[string]Pet{}
	guardianIndex   = map[string]GuardianItem{}
	consumableIndex = map[string]Consumable{}
)

func init() {
	for _, c := range covers {
		coverIndex[c.ID] = c
	}
	for _, a := range avatars {
		avatarIndex[a.ID] = a
	}
	for _, p := range pets {
		petIndex[p.ID] = p
	}
	for _, g := range guardians {
		guardianIndex[g.ID] = g
	}
	for _, c := range consumables {
		consumableIndex[c.ID] = c
	}
}

func CoverByID(id string) (Cover, bool) {
	c, ok := coverIndex[id]
	return c, ok
}

func AvatarByID(id string) (Avatar, bool) {
	a, ok := avatarIndex[id]
	return a, ok
}

func PetByID(id string) (Pet, bool) {
	p, ok := petIndex[id]
	return p, ok
}

func GuardianByID(id string) (GuardianItem, bool) {
	g, ok := guardianIndex[id]
	return g, ok
}

func ConsumableByID(id string) (Consumable, bool) {
	c, ok := consumableIndex[id]
	return c, ok
}

func Covers() []Cover           { return covers }
func Avatars() []Avatar         { return avatars }
func Pets() []Pet               { return pets }
func Guardians() []GuardianItem { return guardians }
func Consumables() []Consumable { return consumables }
