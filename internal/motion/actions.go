package motion

// ActionType groups hotkey mappings by what they do to the avatar.
type ActionType string

const (
	TypeExpression ActionType = "expression"
	TypeToggle     ActionType = "toggle"
	TypePose       ActionType = "pose"
	TypeSystem     ActionType = "system"
)

// ActionConfig is one physical hotkey binding.
type ActionConfig struct {
	Name string
	Type ActionType
	Keys []string
}

// actions maps catalog keys to avatar hotkeys. Key chords follow the
// streaming rig's binding sheet; single keys are pressed, multiples are sent
// as a chord.
var actions = map[string]ActionConfig{
	// system
	"flying_head": {Name: "飞头", Type: TypeSystem, Keys: []string{"shift", "1"}},
	"shrink":      {Name: "变小", Type: TypeSystem, Keys: []string{"shift", "2"}},

	// expressions
	"tongue_out": {Name: "吐舌", Type: TypeExpression, Keys: []string{"ctrl", "0"}},
	"angry":      {Name: "生气", Type: TypeExpression, Keys: []string{"num1"}},
	"speechless": {Name: "无语", Type: TypeExpression, Keys: []string{"num2"}},
	"sleepy":     {Name: "ZZZ", Type: TypeExpression, Keys: []string{"num3"}},
	"dark_face":  {Name: "脸黑", Type: TypeExpression, Keys: []string{"num4"}},
	"blush":      {Name: "脸红", Type: TypeExpression, Keys: []string{"num5"}},
	"dizziness":  {Name: "眩晕", Type: TypeExpression, Keys: []string{"num6"}},
	"crying":     {Name: "流泪", Type: TypeExpression, Keys: []string{"num7"}},
	"star_eyes":  {Name: "星星眼", Type: TypeExpression, Keys: []string{"num8"}},
	"heart_eyes": {Name: "爱心眼", Type: TypeExpression, Keys: []string{"num9"}},
	"black_eyes": {Name: "黑眼", Type: TypeExpression, Keys: []string{"ctrl", "1"}},
	"white_eyes": {Name: "白眼", Type: TypeExpression, Keys: []string{"ctrl", "2"}},

	// toggles / accessories
	"shark_tail":       {Name: "鲨鱼尾巴", Type: TypeToggle, Keys: []string{"ctrl", "3"}},
	"jellyfish":        {Name: "水母", Type: TypeToggle, Keys: []string{"ctrl", "4"}},
	"ears_gone":        {Name: "兽耳消失", Type: TypeToggle, Keys: []string{"ctrl", "5"}},
	"hair_gone":        {Name: "碎发消失", Type: TypeToggle, Keys: []string{"ctrl", "6"}},
	"skirt_gone":       {Name: "后裙摆消失", Type: TypeToggle, Keys: []string{"ctrl", "7"}},
	"upper_teeth_gone": {Name: "上牙消失", Type: TypeToggle, Keys: []string{"ctrl", "8"}},
	"moon_hairclip":    {Name: "月亮发夹", Type: TypeToggle, Keys: []string{"tab", "1"}},
	"shark_hairclip":   {Name: "鲨鱼发夹", Type: TypeToggle, Keys: []string{"tab", "2"}},
	"pearl_hairclip":   {Name: "珍珠发夹", Type: TypeToggle, Keys: []string{"tab", "3"}},
	"normal_hairclip":  {Name: "普通发夹", Type: TypeToggle, Keys: []string{"tab", "4"}},
	"shark_upper_teeth": {Name: "鲨鱼上牙", Type: TypeToggle, Keys: []string{"tab", "5"}},
	"halo":              {Name: "头顶光环", Type: TypeToggle, Keys: []string{"tab", "6"}},
	"front_hair_length": {Name: "前发长度", Type: TypeToggle, Keys: []string{"q", "1"}},

	// poses
	"holding_star":    {Name: "手捧星", Type: TypePose, Keys: []string{"shift", "3"}},
	"finger_heart":    {Name: "比心", Type: TypePose, Keys: []string{"shift", "4"}},
	"clutching_chest": {Name: "捂胸口", Type: TypePose, Keys: []string{"shift", "5"}},
	"praying":         {Name: "祈祷", Type: TypePose, Keys: []string{"shift", "6"}},
	"game_console":    {Name: "游戏机", Type: TypePose, Keys: []string{"q", "2"}},
	"microphone":      {Name: "麦克风", Type: TypePose, Keys: []string{"q", "3"}},
	"leaning_forward": {Name: "前倾", Type: TypePose, Keys: []string{"q", "4"}},
}

// aliases maps common intent names onto bound keys.
var aliases = map[string]string{
	"singing": "microphone",
	"gaming":  "game_console",
	"happy":   "heart_eyes",
	"stunned": "dizziness",
	"shy":     "blush",
	"cry":     "crying",
	"sad":     "crying",
}
