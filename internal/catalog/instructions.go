package catalog

// instructions is keyed by the catalog's stable exercise id so that renaming
// an exercise never detaches its instructions.
var instructions = map[int][]string{
	1: {
		"Start in a high plank position with hands directly under your shoulders.",
		"Lower your body until your chest nearly touches the floor, keeping your elbows close to your body.",
		"Push back up to the starting position with explosive force.",
		"Keep your core engaged and your back flat throughout the movement.",
	},
	2: {
		"Stand with feet shoulder-width apart, chest up, and core tight.",
		"Lower your hips back and down as if sitting in a chair, keeping your knees behind your toes.",
		"Go as low as you can comfortably, aiming for thighs parallel to the floor.",
		"Drive through your heels to return to the starting position.",
	},
	3: {
		"Stand tall, then take a big step forward with one leg.",
		"Lower your hips until both knees are bent at a 90-degree angle.",
		"Ensure your front knee is directly above your ankle and your back knee hovers just above the ground.",
		"Push off your front foot to return to the start and alternate legs.",
	},
	4: {
		"Grip the pull-up bar with your hands slightly wider than shoulder-width, palms facing away.",
		"Hang with your arms fully extended, engaging your shoulders and core.",
		"Pull your body up until your chin is over the bar.",
		"Lower yourself back down with control to the starting position.",
	},
	5: {
		"Stand with your mid-foot under the barbell.",
		"Hinge at your hips and bend your knees to grip the bar, keeping your back straight.",
		"Drive through your legs and lift the weight, keeping it close to your body.",
		"Stand up tall, then lower the weight back to the ground with control.",
	},
	6: {
		"Start standing with your feet together and arms at your sides.",
		"Simultaneously jump your feet out wide while raising your arms overhead.",
		"Immediately jump back to the starting position.",
		"Maintain a light and quick pace.",
	},
	7: {
		"Stand in place with your feet hip-width apart.",
		"Drive your right knee up towards your chest as high as you can.",
		"Quickly switch and drive your left knee up.",
		"Continue alternating legs at a running pace.",
	},
	8: {
		"Start standing, then drop into a squat with your hands on the ground.",
		"Kick your feet back into a high plank position.",
		"Immediately return your feet to the squat position.",
		"Jump up explosively from the squat position with your arms overhead.",
	},
	9: {
		"Start in a high plank position with your hands under your shoulders.",
		"Drive your right knee towards your chest, then return it to the start.",
		"Immediately drive your left knee towards your chest.",
		"Continue alternating legs in a running motion while keeping your hips low.",
	},
	10: {
		"Hold the jump rope handles with a firm grip.",
		"Swing the rope over your head and jump with both feet as it passes under you.",
		"Keep your jumps low to the ground and land softly on the balls of your feet.",
		"Maintain a steady rhythm and keep your core engaged.",
	},
	11: {
		"Place your forearms on the ground with elbows directly under your shoulders.",
		"Extend your legs back, forming a straight line from your head to your heels.",
		"Engage your core and glutes to prevent your hips from sagging.",
		"Hold this position and breathe steadily for the specified time.",
	},
	12: {
		"Kneel on the floor, then sit back on your heels.",
		"Hinge at your hips and fold forward, resting your forehead on the floor.",
		"Extend your arms out in front of you or rest them alongside your body.",
		"Breathe deeply and relax into the stretch.",
	},
	13: {
		"Start on your hands and knees.",
		"Lift your hips up and back, forming an inverted V-shape with your body.",
		"Press your hands firmly into the floor and gently pedal your feet to stretch your hamstrings.",
		"Keep your head between your upper arms, looking towards your knees.",
	},
	14: {
		"Step your feet wide apart.",
		"Turn your right foot out 90 degrees and your left foot in slightly.",
		"Bend your right knee, keeping it over your ankle, and extend your arms parallel to the floor.",
		"Hold the pose, gazing over your right hand, then switch sides.",
	},
	15: {
		"Find an open space or use a treadmill.",
		"Warm up for 3-5 minutes with a light jog.",
		"Sprint at your maximum effort for the specified time.",
		"Slow down to a walk or light jog for the rest/recovery period.",
	},
	16: {
		"Start in a high plank position with your feet together.",
		"Keeping your core tight, jump your feet out wide.",
		"Immediately jump your feet back together to the starting position.",
		"Maintain a stable upper body and avoid letting your hips bounce.",
	},
	17: {
		"Start in a squat position with your thighs parallel to the floor.",
		"Engage your core and jump up explosively, extending your legs fully.",
		"Land softly back in the squat position to absorb the impact.",
		"Immediately go into the next jump.",
	},
	18: {
		"Start on all fours with your hands under your shoulders and knees under your hips.",
		"Lift your knees slightly off the ground, keeping your back flat.",
		"Move one hand and the opposite foot forward a short distance.",
		"Continue crawling forward, alternating sides, while keeping your hips low.",
	},
}

// defaultInstructions is returned for ids with no entry, including the ids of
// exercises inlined in custom workouts.
var defaultInstructions = []string{
	"Follow proper form for this exercise",
	"Maintain control throughout the movement",
	"Breathe steadily during the exercise",
	"Rest between sets as needed",
}

// Instructions returns the step list for exercise id and whether it was a
// specific entry rather than the fallback.
func Instructions(id int) ([]string, bool) {
	if steps, ok := instructions[id]; ok {
		return append([]string(nil), steps...), true
	}
	return append([]string(nil), defaultInstructions...), false
}
