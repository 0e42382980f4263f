package mansion

// Room is one node of the mansion map. A room owns its children; the
// tree is built once by the casebook loader and only read afterwards.
type Room struct {
	Name  string
	Clue  string // пусто, если в комнате нет улики
	Left  *Room
	Right *Room
}

// Association links a clue text to the suspect it implicates.
type Association struct {
	Clue    string `yaml:"clue"`
	Suspect string `yaml:"suspect"`
}

// Casebook is the static material of one game: the map and the
// clue -> suspect list.
type Casebook struct {
	Name         string
	Title        string
	Root         *Room
	Associations []Association
}

func NewRoom(name, clue string) *Room {
	return &Room{Name: name, Clue: clue}
}

func (r *Room) HasClue() bool {
	return r != nil && r.Clue != ""
}

// IsLeaf reports a dead end: no left and no right child.
func (r *Room) IsLeaf() bool {
	return r != nil && r.Left == nil && r.Right == nil
}

func (r *Room) Count() int {
	if r == nil {
		return 0
	}
	return 1 + r.Left.Count() + r.Right.Count()
}

// Release tears the subtree down children-first. release, when not nil,
// sees every room exactly once, after both of its children.
func Release(root *Room, release func(*Room)) int {
	if root == nil {
		return 0
	}
	n := Release(root.Left, release) + Release(root.Right, release)
	root.Left, root.Right = nil, nil
	if release != nil {
		release(root)
	}
	return n + 1
}
