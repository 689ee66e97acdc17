package catalog

type symptomEntry struct {
	Name     string
	Synonyms []string
}

// symptomEntries lists the canonical symptom vocabulary with the free-text
// synonyms that resolve to each canonical name. Synonym phrases are kept free
// of stop words where possible, because the text matcher builds its windows
// over the stop-word-filtered token sequence.
func symptomEntries() []symptomEntry {
	return []symptomEntry{
		{Name: "fever", Synonyms: []string{"pyrexia", "febrile", "high temperature", "temperature"}},
		{Name: "cough", Synonyms: []string{"coughing"}},
		{Name: "headache", Synonyms: []string{"head pain", "head ache", "cephalalgia"}},
		{Name: "fatigue", Synonyms: []string{"tiredness", "tired", "exhaustion", "exhausted", "lethargy", "weakness"}},
		{Name: "sore throat", Synonyms: []string{"throat pain", "scratchy throat", "pharyngitis"}},
		{Name: "runny nose", Synonyms: []string{"rhinorrhea", "dripping nose"}},
		{Name: "nasal congestion", Synonyms: []string{"stuffy nose", "blocked nose", "congestion"}},
		{Name: "sneezing", Synonyms: []string{"sneeze"}},
		{Name: "shortness of breath", Synonyms: []string{"breathlessness", "breathless", "dyspnea"}},
		{Name: "chest pain", Synonyms: []string{"chest tightness", "chest discomfort", "chest pressure"}},
		{Name: "wheezing", Synonyms: []string{"wheeze"}},
		{Name: "nausea", Synonyms: []string{"queasiness", "queasy", "nauseous"}},
		{Name: "vomiting", Synonyms: []string{"vomit", "emesis", "throwing up"}},
		{Name: "diarrhea", Synonyms: []string{"diarrhoea", "loose stool"}},
		{Name: "constipation", Synonyms: []string{"constipated"}},
		{Name: "abdominal pain", Synonyms: []string{"stomach pain", "stomach ache", "belly pain", "abdominal cramp", "stomach cramp"}},
		{Name: "loss of appetite", Synonyms: []string{"appetite loss", "poor appetite", "anorexia"}},
		{Name: "weight loss", Synonyms: []string{"losing weight"}},
		{Name: "chills", Synonyms: []string{"chill", "shivering", "shiver"}},
		{Name: "sweating", Synonyms: []string{"sweat", "night sweat", "perspiration"}},
		{Name: "dizziness", Synonyms: []string{"dizzy", "lightheadedness", "lightheaded", "vertigo"}},
		{Name: "muscle pain", Synonyms: []string{"muscle ache", "myalgia", "body ache", "body pain"}},
		{Name: "joint pain", Synonyms: []string{"joint ache", "arthralgia"}},
		{Name: "back pain", Synonyms: []string{"backache", "back ache"}},
		{Name: "rash", Synonyms: []string{"skin rash", "hives", "skin eruption"}},
		{Name: "itching", Synonyms: []string{"itch", "itchiness", "itchy", "pruritus"}},
		{Name: "swelling", Synonyms: []string{"swollen", "edema"}},
		{Name: "frequent urination", Synonyms: []string{"polyuria"}},
		{Name: "excessive thirst", Synonyms: []string{"polydipsia", "increased thirst", "thirsty"}},
		{Name: "blurred vision", Synonyms: []string{"blurry vision"}},
		{Name: "insomnia", Synonyms: []string{"sleeplessness", "sleepless"}},
		{Name: "anxiety", Synonyms: []string{"anxiousness", "anxious", "nervousness"}},
		{Name: "palpitations", Synonyms: []string{"palpitation", "racing heart", "heart racing"}},
		{Name: "jaundice", Synonyms: []string{"yellow skin", "yellowing"}},
		{Name: "dark urine", Synonyms: nil},
		{Name: "pale skin", Synonyms: []string{"paleness", "pallor"}},
	}
}

// symptomAssociations maps each canonical symptom to the diseases it points
// at. Keys are canonical symptom names; the scorer iterates the value slices
// in order, so slice order decides first-encounter order for equal scores.
func symptomAssociations() map[string][]string {
	return map[string][]string{
		"fever": {
			"Common Cold", "Influenza", "COVID-19", "Pneumonia", "Sinusitis", "Strep Throat",
			"Gastroenteritis", "Food Poisoning", "Urinary Tract Infection", "Malaria", "Dengue",
			"Typhoid", "Tuberculosis",
		},
		"cough": {
			"Common Cold", "Influenza", "COVID-19", "Pneumonia", "Bronchitis", "Asthma", "Tuberculosis",
		},
		"headache": {
			"Common Cold", "Influenza", "COVID-19", "Sinusitis", "Strep Throat", "Migraine",
			"Hypertension", "Malaria", "Dengue", "Typhoid", "Dehydration",
		},
		"fatigue": {
			"Influenza", "COVID-19", "Pneumonia", "Bronchitis", "Diabetes", "Anemia",
			"Hypothyroidism", "Hepatitis", "Typhoid", "Tuberculosis", "Dehydration",
		},
		"sore throat":         {"Common Cold", "Influenza", "COVID-19", "Sinusitis", "Strep Throat"},
		"runny nose":          {"Common Cold", "Allergic Rhinitis", "Sinusitis"},
		"nasal congestion":    {"Common Cold", "Influenza", "Allergic Rhinitis", "Sinusitis"},
		"sneezing":            {"Common Cold", "Allergic Rhinitis"},
		"shortness of breath": {"COVID-19", "Pneumonia", "Bronchitis", "Asthma", "Anemia"},
		"chest pain":          {"Pneumonia", "Bronchitis", "Asthma", "Tuberculosis"},
		"wheezing":            {"Bronchitis", "Asthma"},
		"nausea": {
			"Migraine", "Gastroenteritis", "Food Poisoning", "Gastritis",
			"Irritable Bowel Syndrome", "Hepatitis", "Malaria", "Dengue",
		},
		"vomiting":     {"Migraine", "Gastroenteritis", "Food Poisoning", "Gastritis"},
		"diarrhea":     {"Gastroenteritis", "Food Poisoning", "Irritable Bowel Syndrome"},
		"constipation": {"Irritable Bowel Syndrome", "Hypothyroidism", "Typhoid"},
		"abdominal pain": {
			"Gastroenteritis", "Food Poisoning", "Gastritis", "Irritable Bowel Syndrome",
			"Urinary Tract Infection", "Hepatitis", "Typhoid",
		},
		"loss of appetite":   {"Gastritis", "Hepatitis", "Typhoid"},
		"weight loss":        {"Diabetes", "Tuberculosis"},
		"chills":             {"Influenza", "Pneumonia", "Gastroenteritis", "Malaria"},
		"sweating":           {"Malaria", "Tuberculosis", "Anxiety Disorder"},
		"dizziness":          {"Migraine", "Hypertension", "Anemia", "Anxiety Disorder", "Dehydration"},
		"muscle pain":        {"Influenza", "COVID-19", "Hypothyroidism", "Malaria", "Dengue"},
		"joint pain":         {"Dengue", "Arthritis"},
		"back pain":          {"Arthritis"},
		"rash":               {"Dengue"},
		"itching":            {"Allergic Rhinitis"},
		"swelling":           {"Arthritis"},
		"frequent urination": {"Urinary Tract Infection", "Diabetes"},
		"excessive thirst":   {"Diabetes", "Dehydration"},
		"blurred vision":     {"Migraine", "Diabetes", "Hypertension"},
		"insomnia":           {"Anxiety Disorder"},
		"anxiety":            {"Anxiety Disorder"},
		"palpitations":       {"Hypertension", "Anemia", "Anxiety Disorder"},
		"jaundice":           {"Hepatitis"},
		"dark urine":         {"Urinary Tract Infection", "Hepatitis", "Dehydration"},
		"pale skin":          {"Anemia", "Hypothyroidism"},
	}
}
