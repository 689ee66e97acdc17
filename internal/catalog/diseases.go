package catalog

// diseaseEntries maps disease names to the care information shown alongside a
// ranked result. This is descriptive reference data, not medical advice; the
// wording mirrors common patient-information summaries.
func diseaseEntries() map[string]DiseaseInfo {
	return map[string]DiseaseInfo{
		"Common Cold": {
			Description: "A mild viral infection of the nose and throat that usually clears on its own within a week.",
			Precautions: []string{"Rest at home", "Wash hands frequently", "Avoid close contact with others", "Cover coughs and sneezes"},
			Diet:        "Warm fluids, broths, citrus fruits and honey with warm water.",
			Workout:     "Light walking only; resume normal activity once symptoms fade.",
			Medication:  "Paracetamol for aches, saline nasal spray, lozenges for throat irritation.",
		},
		"Influenza": {
			Description: "A contagious respiratory infection caused by influenza viruses, with abrupt fever, aches and exhaustion.",
			Precautions: []string{"Stay home until fever-free for 24 hours", "Drink plenty of fluids", "Get an annual flu vaccine", "Avoid contact with vulnerable people"},
			Diet:        "Hydrating fluids, light soups, fruit and easily digested meals.",
			Workout:     "Full rest during fever; gentle activity only after recovery.",
			Medication:  "Antiviral drugs if started early, paracetamol or ibuprofen for fever and aches.",
		},
		"COVID-19": {
			Description: "A respiratory illness caused by the SARS-CoV-2 virus, ranging from mild cold-like symptoms to severe breathing difficulty.",
			Precautions: []string{"Isolate while symptomatic", "Wear a mask around others", "Monitor oxygen saturation", "Seek care if breathing worsens"},
			Diet:        "Plenty of fluids, balanced meals rich in protein and vitamins.",
			Workout:     "Rest during the acute phase; return to exercise gradually.",
			Medication:  "Paracetamol for fever; antivirals where prescribed for higher-risk patients.",
		},
		"Pneumonia": {
			Description: "An infection that inflames the air sacs of one or both lungs, which may fill with fluid.",
			Precautions: []string{"Complete the full antibiotic course", "Rest and avoid smoking", "Use a humidifier", "Seek urgent care if breathing becomes difficult"},
			Diet:        "High-fluid intake, warm soups, protein-rich foods to support recovery.",
			Workout:     "Bed rest initially; breathing exercises as recovery allows.",
			Medication:  "Antibiotics for bacterial pneumonia, antipyretics for fever.",
		},
		"Bronchitis": {
			Description: "Inflammation of the bronchial tubes, usually after a viral infection, producing a persistent cough.",
			Precautions: []string{"Avoid smoke and irritants", "Use a humidifier", "Rest the voice", "Stay hydrated"},
			Diet:        "Warm fluids, honey, ginger tea and light meals.",
			Workout:     "Light activity as tolerated; avoid exertion in cold air.",
			Medication:  "Cough suppressants at night, bronchodilators if wheezing is present.",
		},
		"Asthma": {
			Description: "A chronic condition in which airways narrow, swell and produce extra mucus, causing wheeze and breathlessness.",
			Precautions: []string{"Identify and avoid triggers", "Keep a reliever inhaler at hand", "Follow the written asthma plan", "Review therapy regularly"},
			Diet:        "Balanced diet; limit foods that have triggered attacks before.",
			Workout:     "Regular moderate exercise with proper warm-up; swimming is well tolerated.",
			Medication:  "Inhaled bronchodilators for relief, inhaled corticosteroids for control.",
		},
		"Allergic Rhinitis": {
			Description: "An allergic response of the nasal passages to airborne allergens such as pollen, dust or dander.",
			Precautions: []string{"Limit exposure to known allergens", "Keep windows closed in pollen season", "Wash bedding in hot water", "Use air filtration where possible"},
			Diet:        "Normal balanced diet; some find local honey soothing.",
			Workout:     "Indoor exercise on high-pollen days.",
			Medication:  "Antihistamines, intranasal corticosteroid sprays, saline rinses.",
		},
		"Sinusitis": {
			Description: "Inflammation of the sinus lining causing facial pressure, congestion and headache.",
			Precautions: []string{"Use steam inhalation", "Stay hydrated", "Sleep with the head elevated", "Avoid smoke exposure"},
			Diet:        "Warm fluids and spicy foods can help drainage.",
			Workout:     "Light activity; avoid diving and air travel during acute episodes.",
			Medication:  "Saline irrigation, decongestants short-term, antibiotics only if bacterial.",
		},
		"Strep Throat": {
			Description: "A bacterial throat infection caused by group A streptococcus, with sudden sore throat and fever.",
			Precautions: []string{"Complete the antibiotic course", "Replace your toothbrush after starting treatment", "Avoid sharing utensils", "Rest the voice"},
			Diet:        "Soft foods, warm soups, cold soothing drinks.",
			Workout:     "Rest until fever resolves.",
			Medication:  "Penicillin or amoxicillin as prescribed, paracetamol for pain.",
		},
		"Migraine": {
			Description: "A neurological condition causing recurring moderate-to-severe headaches, often with nausea and visual disturbance.",
			Precautions: []string{"Keep a trigger diary", "Maintain regular sleep", "Limit caffeine and alcohol", "Rest in a dark quiet room during attacks"},
			Diet:        "Regular meals; avoid personal trigger foods such as aged cheese or processed meats.",
			Workout:     "Regular aerobic exercise between attacks.",
			Medication:  "NSAIDs or triptans at onset, preventive therapy for frequent attacks.",
		},
		"Gastroenteritis": {
			Description: "Inflammation of the stomach and intestines, usually viral, causing diarrhea, vomiting and cramps.",
			Precautions: []string{"Wash hands thoroughly", "Disinfect contaminated surfaces", "Stay home while symptomatic", "Rehydrate continuously"},
			Diet:        "Oral rehydration solution, bananas, rice, toast; avoid dairy until recovered.",
			Workout:     "Rest until symptoms settle.",
			Medication:  "Oral rehydration salts; antiemetics if vomiting is severe.",
		},
		"Food Poisoning": {
			Description: "Illness caused by contaminated food or drink, typically with rapid-onset vomiting and diarrhea.",
			Precautions: []string{"Discard the suspect food", "Rehydrate early and often", "Practise safe food handling", "Seek care if symptoms persist beyond two days"},
			Diet:        "Clear fluids first, then bland foods in small portions.",
			Workout:     "Rest until fully rehydrated.",
			Medication:  "Oral rehydration salts; antibiotics only for specific confirmed pathogens.",
		},
		"Gastritis": {
			Description: "Irritation or inflammation of the stomach lining, often linked to H. pylori, alcohol or NSAID use.",
			Precautions: []string{"Avoid alcohol and smoking", "Limit NSAID painkillers", "Eat smaller regular meals", "Manage stress"},
			Diet:        "Bland non-acidic foods; avoid spicy, fried and very hot meals.",
			Workout:     "Normal light activity is fine.",
			Medication:  "Antacids, proton-pump inhibitors, eradication therapy if H. pylori is confirmed.",
		},
		"Irritable Bowel Syndrome": {
			Description: "A chronic functional bowel disorder with recurring abdominal pain and altered bowel habit.",
			Precautions: []string{"Identify personal food triggers", "Eat at regular times", "Manage stress levels", "Keep a symptom diary"},
			Diet:        "High-fibre or low-FODMAP diet depending on the dominant symptom pattern.",
			Workout:     "Regular moderate exercise improves symptoms.",
			Medication:  "Antispasmodics, laxatives or antidiarrheals matched to the symptom pattern.",
		},
		"Urinary Tract Infection": {
			Description: "A bacterial infection of the urinary tract causing burning, urgency and frequent urination.",
			Precautions: []string{"Drink plenty of water", "Do not delay urination", "Complete the antibiotic course", "Urinate after intercourse"},
			Diet:        "Extra fluids; cranberry products may help some people.",
			Workout:     "Normal activity as comfort allows.",
			Medication:  "Short-course antibiotics as prescribed, paracetamol for discomfort.",
		},
		"Diabetes": {
			Description: "A chronic metabolic condition in which blood glucose stays elevated due to insufficient insulin action.",
			Precautions: []string{"Monitor blood glucose regularly", "Attend scheduled reviews", "Inspect feet daily", "Never skip prescribed therapy"},
			Diet:        "Low refined sugar, high fibre, consistent carbohydrate portions.",
			Workout:     "At least 150 minutes of moderate aerobic activity weekly.",
			Medication:  "Metformin or other glucose-lowering agents, insulin where required.",
		},
		"Hypertension": {
			Description: "Persistently raised blood pressure, usually symptomless but a major risk factor for heart disease and stroke.",
			Precautions: []string{"Measure blood pressure regularly", "Reduce salt intake", "Limit alcohol", "Stop smoking"},
			Diet:        "DASH-style diet: vegetables, fruit, whole grains, low sodium.",
			Workout:     "Regular aerobic exercise such as brisk walking or cycling.",
			Medication:  "Antihypertensives as prescribed; do not stop without advice.",
		},
		"Anemia": {
			Description: "A shortage of healthy red blood cells or hemoglobin, reducing oxygen delivery to the body.",
			Precautions: []string{"Investigate the underlying cause", "Take supplements as directed", "Attend follow-up blood tests", "Report worsening breathlessness"},
			Diet:        "Iron-rich foods: leafy greens, legumes, red meat; pair with vitamin C.",
			Workout:     "Light-to-moderate exercise as energy allows.",
			Medication:  "Iron, vitamin B12 or folate supplementation depending on the deficiency.",
		},
		"Hypothyroidism": {
			Description: "An underactive thyroid gland producing too little thyroid hormone, slowing the body's metabolism.",
			Precautions: []string{"Take replacement hormone on an empty stomach", "Attend annual thyroid tests", "Report persistent fatigue", "Avoid abrupt dose changes"},
			Diet:        "Balanced diet with adequate iodine and selenium.",
			Workout:     "Regular moderate exercise helps energy and weight control.",
			Medication:  "Levothyroxine replacement, dose adjusted by blood tests.",
		},
		"Hepatitis": {
			Description: "Inflammation of the liver, most often viral, which can cause jaundice, dark urine and fatigue.",
			Precautions: []string{"Avoid alcohol completely", "Review all medicines with a doctor", "Practise good hygiene", "Attend liver function follow-ups"},
			Diet:        "Light low-fat meals, plenty of fluids, no alcohol.",
			Workout:     "Rest during the acute phase; gentle activity in recovery.",
			Medication:  "Supportive care for acute viral hepatitis; antivirals for chronic forms.",
		},
		"Malaria": {
			Description: "A mosquito-borne parasitic infection with cyclical fever, chills and sweats; a medical emergency if untreated.",
			Precautions: []string{"Seek testing promptly after travel to endemic areas", "Use bed nets and repellent", "Complete the full antimalarial course", "Watch for warning signs such as confusion"},
			Diet:        "Frequent fluids and light nourishing meals during fever cycles.",
			Workout:     "Complete rest until treatment finishes.",
			Medication:  "Artemisinin-based combination therapy as prescribed.",
		},
		"Dengue": {
			Description: "A mosquito-borne viral infection causing high fever, severe joint and muscle pain and rash.",
			Precautions: []string{"Avoid aspirin and ibuprofen", "Monitor for bleeding or severe abdominal pain", "Eliminate standing water around the home", "Rehydrate continuously"},
			Diet:        "Plenty of fluids, papaya, soups and soft foods.",
			Workout:     "Full rest until platelet counts recover.",
			Medication:  "Paracetamol only for fever; hospital care for warning signs.",
		},
		"Typhoid": {
			Description: "A bacterial infection spread through contaminated food and water, with sustained fever and abdominal symptoms.",
			Precautions: []string{"Complete the full antibiotic course", "Drink only safe water", "Maintain strict hand hygiene", "Avoid preparing food for others while ill"},
			Diet:        "High-calorie soft diet, boiled water, avoid raw foods.",
			Workout:     "Bed rest during fever; gradual return to activity.",
			Medication:  "Antibiotics guided by local resistance patterns.",
		},
		"Tuberculosis": {
			Description: "A bacterial infection that usually attacks the lungs, with chronic cough, night sweats and weight loss.",
			Precautions: []string{"Never interrupt the treatment course", "Cover the mouth when coughing", "Ventilate living spaces", "Attend all follow-up sputum tests"},
			Diet:        "High-protein, high-calorie diet to regain weight.",
			Workout:     "Light activity once no longer infectious.",
			Medication:  "Standard multi-drug anti-tuberculosis regimen for at least six months.",
		},
		"Arthritis": {
			Description: "Inflammation of one or more joints causing pain, swelling and stiffness that worsens with age.",
			Precautions: []string{"Protect joints during activity", "Maintain a healthy weight", "Apply heat or cold for flares", "Keep moving within comfort"},
			Diet:        "Anti-inflammatory pattern: oily fish, nuts, olive oil, vegetables.",
			Workout:     "Low-impact exercise such as swimming, cycling and stretching.",
			Medication:  "NSAIDs for flares, disease-modifying drugs for inflammatory forms.",
		},
		"Anxiety Disorder": {
			Description: "Persistent excessive worry with physical symptoms such as racing heart, restlessness and poor sleep.",
			Precautions: []string{"Keep a regular sleep schedule", "Limit caffeine and alcohol", "Practise relaxation techniques", "Seek professional support early"},
			Diet:        "Regular balanced meals; limit stimulants.",
			Workout:     "Regular aerobic exercise and yoga reduce symptom intensity.",
			Medication:  "SSRIs or short-term anxiolytics under medical supervision; therapy first-line.",
		},
		"Dehydration": {
			Description: "A deficit of body water from inadequate intake or excess loss, causing thirst, dizziness and dark urine.",
			Precautions: []string{"Sip fluids steadily rather than all at once", "Increase intake in heat or illness", "Watch urine color", "Seek care for confusion or fainting"},
			Diet:        "Water, oral rehydration solution, water-rich fruits.",
			Workout:     "Pause exercise until rehydrated; avoid midday heat.",
			Medication:  "Oral rehydration salts; intravenous fluids in severe cases.",
		},
	}
}
