package statuses

const (
	StatusExploring = "exploring"
	StatusAccusing  = "accusing"
	StatusCompleted = "completed"
)
