// internal/component/spawner.go
package component

// SpawnState — состояние спавнера врагов
type SpawnState struct {
	Timer    float64 // ms accumulated since the last spawn
	Interval float64 // ms, only ever decreases, down to the floor
}
