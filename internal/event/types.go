package event

const (
	PointerSampled   EventType = "PointerSampled"   // Data: system.Decision
	ParticlesSpawned EventType = "ParticlesSpawned" // Data: int, сколько создано за кадр
	ParticlesExpired EventType = "ParticlesExpired" // Data: int, сколько удалено за кадр
	PauseToggled     EventType = "PauseToggled"     // Data: bool, true = пауза
)
