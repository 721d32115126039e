// internal/event/types.go
package event

const (
	EnemySpawned     EventType = "EnemySpawned"     // Data: *entity.Enemy
	EnemyKilled      EventType = "EnemyKilled"      // Data: *entity.Enemy
	PlayerDamaged    EventType = "PlayerDamaged"    // Data: int, damage taken
	PlayerLeveledUp  EventType = "PlayerLeveledUp"  // Data: int, new level
	AttributeSpent   EventType = "AttributeSpent"   // Data: component.Attribute
	LevelUpConfirmed EventType = "LevelUpConfirmed" // Модальное окно закрыто
	GameOver         EventType = "GameOver"         // Игрок погиб
	ProjectileFired  EventType = "ProjectileFired"  // Data: *entity.Projectile
)
