package repos

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/daylight/internal/models"
	"github.com/wheelibin/daylight/internal/schedule"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS light (
    id INTEGER PRIMARY KEY,
    schedule_name TEXT,
    automatic INTEGER NOT NULL DEFAULT 1,
    unreachable INTEGER NOT NULL DEFAULT 0,
    target_colour_temp INTEGER NOT NULL,
    target_brightness INTEGER NOT NULL,
    last_update_time TIMESTAMP,
    last_update_colour_temp INTEGER,
    last_update_brightness INTEGER
  );

  CREATE TABLE IF NOT EXISTS scene (
    id TEXT PRIMARY KEY,
    name TEXT,
    schedule_name TEXT,
    light_ids TEXT,
    target_colour_temp INTEGER,
    target_brightness INTEGER,
    last_update_colour_temp INTEGER,
    last_update_brightness INTEGER
  );

  -- scenes are rediscovered on start, lights keep their mode but are re-sent
  DELETE FROM scene;
  UPDATE light SET last_update_time = NULL, last_update_colour_temp = NULL, last_update_brightness = NULL;
`

const selectLight = `
  SELECT id, schedule_name, automatic, unreachable,
         target_colour_temp, target_brightness,
         last_update_time, last_update_colour_temp, last_update_brightness
  FROM light`

type LightRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewLightRepo(logger *log.Logger, db *sql.DB) (*LightRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising light schema: %w", err)
	}

	return &LightRepo{logger: logger, db: db}, nil
}

// UpsertTargets stores the scheduled target of each light, in order, so a
// light named twice keeps the last target. Lights in manual mode keep theirs.
func (r *LightRepo) UpsertTargets(commands []models.LightCommand) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("Error updating light targets: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, cmd := range commands {
		_, err := tx.Exec(`
      INSERT INTO light (id, schedule_name, target_colour_temp, target_brightness)
      VALUES ($1, $2, $3, $4)
      ON CONFLICT(id) DO UPDATE SET
        schedule_name      = excluded.schedule_name,
        target_colour_temp = excluded.target_colour_temp,
        target_brightness  = excluded.target_brightness
      WHERE light.automatic = 1`,
			cmd.LightID, cmd.ScheduleName, cmd.ColorTemperature, cmd.Brightness)
		if err != nil {
			return fmt.Errorf("Error updating target for light (%d): %w", cmd.LightID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Error updating light targets: %w", err)
	}
	return nil
}

// SetManualTarget stores a literal target and takes the light out of automatic mode.
func (r *LightRepo) SetManualTarget(lightID int, target schedule.LightState) error {
	_, err := r.db.Exec(`
    INSERT INTO light (id, automatic, target_colour_temp, target_brightness)
    VALUES ($1, 0, $2, $3)
    ON CONFLICT(id) DO UPDATE SET
      automatic          = 0,
      target_colour_temp = excluded.target_colour_temp,
      target_brightness  = excluded.target_brightness`,
		lightID, target.ColorTemperature, target.Brightness)
	if err != nil {
		return fmt.Errorf("Error setting manual target for light (%d): %w", lightID, err)
	}
	return nil
}

// SetAutomatic switches a light between automatic and manual mode. Returns
// false when the light is unknown.
func (r *LightRepo) SetAutomatic(lightID int, automatic bool) (bool, error) {
	res, err := r.db.Exec(`
    UPDATE light
    SET automatic = $1,
        last_update_time = NULL,
        last_update_colour_temp = NULL,
        last_update_brightness = NULL
    WHERE id = $2`, automatic, lightID)
	if err != nil {
		return false, fmt.Errorf("Error setting light (%d) automatic to %t: %w", lightID, automatic, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Error setting light (%d) automatic to %t: %w", lightID, automatic, err)
	}
	return n > 0, nil
}

// ForgetLastUpdate makes the light's next update be sent even if its target is unchanged.
func (r *LightRepo) ForgetLastUpdate(lightID int) error {
	_, err := r.db.Exec(`
    UPDATE light
    SET last_update_time = NULL, last_update_colour_temp = NULL, last_update_brightness = NULL
    WHERE id = $1`, lightID)
	if err != nil {
		return fmt.Errorf("Error clearing last update of light (%d): %w", lightID, err)
	}
	return nil
}

func (r *LightRepo) SetLightUnreachable(lightID int) error {
	_, err := r.db.Exec("UPDATE light SET unreachable = 1 WHERE id = $1", lightID)
	if err != nil {
		return fmt.Errorf("Error setting light (%d) to unreachable: %w", lightID, err)
	}
	return nil
}

func (r *LightRepo) MarkLightAsUpdated(lightID int) error {
	_, err := r.db.Exec(`
    UPDATE light
    SET last_update_time = $1,
        last_update_colour_temp = target_colour_temp,
        last_update_brightness = target_brightness,
        unreachable = 0
    WHERE id = $2
  `, time.Now(), lightID)
	if err != nil {
		return fmt.Errorf("Error marking light (%d) as updated: %w", lightID, err)
	}
	return nil
}

// GetLight returns the stored light, found is false when it is unknown.
func (r *LightRepo) GetLight(lightID int) (light models.DaylightLight, found bool, err error) {
	row := r.db.QueryRow(selectLight+" WHERE id = $1", lightID)
	light, err = scanLight(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.DaylightLight{}, false, nil
		}
		return models.DaylightLight{}, false, fmt.Errorf("Error reading light (%d): %w", lightID, err)
	}
	return light, true, nil
}

func (r *LightRepo) GetAllLights() ([]models.DaylightLight, error) {
	rows, err := r.db.Query(selectLight + " ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("Error reading lights: %w", err)
	}
	defer rows.Close()

	lights := []models.DaylightLight{}
	for rows.Next() {
		light, err := scanLight(rows)
		if err != nil {
			return nil, fmt.Errorf("Error reading lights: %w", err)
		}
		lights = append(lights, light)
	}
	return lights, rows.Err()
}

// GetAllControllingLightIDs returns the automatic lights whose target differs from the last update sent.
func (r *LightRepo) GetAllControllingLightIDs() ([]int, error) {
	rows, err := r.db.Query(selectLight + " WHERE automatic = 1 ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("Error reading ids for all lights: %w", err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		light, err := scanLight(rows)
		if err != nil {
			return nil, fmt.Errorf("Error reading ids for all lights: %w", err)
		}
		if light.NeedsUpdate() {
			ids = append(ids, light.ID)
		}
	}
	return ids, rows.Err()
}

func (r *LightRepo) AddScenes(scenes []models.DaylightScene) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("Error adding scenes: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM scene"); err != nil {
		return fmt.Errorf("Error adding scenes: %w", err)
	}

	for _, scene := range scenes {
		ids := lo.Map(scene.LightIDs, func(id int, _ int) string { return strconv.Itoa(id) })
		_, err := tx.Exec(
			`INSERT INTO scene (id, name, schedule_name, light_ids) VALUES ($1, $2, $3, $4)`,
			scene.ID, scene.Name, scene.ScheduleName, strings.Join(ids, ","),
		)
		if err != nil {
			return fmt.Errorf("Error adding scene (%s): %w", scene.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Error adding scenes: %w", err)
	}
	return nil
}

func (r *LightRepo) UpdateSceneTargets(scheduleName string, target schedule.LightState) error {
	_, err := r.db.Exec(`
    UPDATE scene
    SET target_colour_temp = $1,
        target_brightness  = $2
    WHERE schedule_name = $3`,
		target.ColorTemperature, target.Brightness, scheduleName)
	if err != nil {
		return fmt.Errorf("Error updating targets for scenes in schedule (%s) to: %v: %w", scheduleName, target, err)
	}
	return nil
}

// GetScenesNeedingUpdate returns scenes with a target that has not been sent yet, and their targets.
func (r *LightRepo) GetScenesNeedingUpdate() ([]models.DaylightScene, []schedule.LightState, error) {
	rows, err := r.db.Query(`
    SELECT id, name, schedule_name, light_ids, target_colour_temp, target_brightness
    FROM scene
    WHERE target_colour_temp IS NOT NULL
      AND (    target_colour_temp != coalesce(last_update_colour_temp, -1)
            OR target_brightness  != coalesce(last_update_brightness, -1)
          )
    ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("Error reading scenes: %w", err)
	}
	defer rows.Close()

	scenes := []models.DaylightScene{}
	targets := []schedule.LightState{}
	for rows.Next() {
		var (
			scene    models.DaylightScene
			lightIDs string
			target   schedule.LightState
		)
		if err := rows.Scan(&scene.ID, &scene.Name, &scene.ScheduleName, &lightIDs, &target.ColorTemperature, &target.Brightness); err != nil {
			return nil, nil, fmt.Errorf("Error reading scenes: %w", err)
		}
		scene.LightIDs = lo.FilterMap(strings.Split(lightIDs, ","), func(raw string, _ int) (int, bool) {
			id, err := strconv.Atoi(raw)
			return id, err == nil
		})
		scenes = append(scenes, scene)
		targets = append(targets, target)
	}
	return scenes, targets, rows.Err()
}

func (r *LightRepo) MarkSceneAsUpdated(sceneID string) error {
	_, err := r.db.Exec(`
    UPDATE scene
    SET last_update_colour_temp = target_colour_temp,
        last_update_brightness  = target_brightness
    WHERE id = $1`, sceneID)
	if err != nil {
		return fmt.Errorf("Error marking scene (%s) as updated: %w", sceneID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLight(row scanner) (models.DaylightLight, error) {
	var (
		light          models.DaylightLight
		scheduleName   sql.NullString
		lastUpdateTime sql.NullTime
		lastCT         sql.NullInt64
		lastBri        sql.NullInt64
	)
	err := row.Scan(
		&light.ID, &scheduleName, &light.Automatic, &light.Unreachable,
		&light.TargetColorTemperature, &light.TargetBrightness,
		&lastUpdateTime, &lastCT, &lastBri,
	)
	if err != nil {
		return models.DaylightLight{}, err
	}

	light.ScheduleName = scheduleName.String
	if lastUpdateTime.Valid {
		light.LastUpdateTime = &lastUpdateTime.Time
	}
	if lastCT.Valid {
		v := int(lastCT.Int64)
		light.LastUpdateColorTemperature = &v
	}
	if lastBri.Valid {
		v := int(lastBri.Int64)
		light.LastUpdateBrightness = &v
	}
	return light, nil
}
