package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type NameComponentSpec struct {
	Value string `yaml:"value"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type PhysicsBodyComponentSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Radius        float64 `yaml:"radius"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	Elasticity    float64 `yaml:"elasticity"`
	Static        bool    `yaml:"static"`
	Kinematic     bool    `yaml:"kinematic"`
	Sensor        bool    `yaml:"sensor"`
	DefaultWidth  float64 `yaml:"default_width"`
	DefaultHeight float64 `yaml:"default_height"`
}

type SpringJointComponentSpec struct {
	RestLength float64 `yaml:"rest_length"`
	Stiffness  float64 `yaml:"stiffness"`
	Damping    float64 `yaml:"damping"`
	// Enabled defaults to true when omitted.
	Enabled *bool `yaml:"enabled"`
}

type ShapeComponentSpec struct {
	Fill    YAMLColor `yaml:"fill"`
	Outline YAMLColor `yaml:"outline"`
}

type LineRenderComponentSpec struct {
	Width     float32   `yaml:"width"`
	Color     YAMLColor `yaml:"color"`
	AntiAlias bool      `yaml:"anti_alias"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	TargetName string  `yaml:"target_name"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type BallLauncherComponentSpec struct {
	BallPrefab   string   `yaml:"ball_prefab"`
	PivotName    string   `yaml:"pivot_name"`
	RespawnDelay float64  `yaml:"respawn_delay"`
	DetachDelay  *float64 `yaml:"detach_delay"`
	BallLifetime float64  `yaml:"ball_lifetime"`
}

type TTLComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}
